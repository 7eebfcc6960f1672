package gfx

// classicFont is the built-in 6x8 font: 5 column bytes per character
// (bit 0 = top row), plus one blank spacing column added at draw time.
// Codes 0x00-0x1F hold the classic symbol glyphs, 0x20-0x7F ASCII, and
// 0x80-0xFF the CP437 extended set. The table predates its CP437 cleanup:
// one slot near 0xB0 is shifted, which is why DrawChar remaps codes >= 176
// unless CP437 mode is enabled.
var classicFont = [1280]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, // 0x00
	0x3E, 0x5B, 0x4F, 0x5B, 0x3E, // 0x01 smiley
	0x3E, 0x6B, 0x4F, 0x6B, 0x3E, // 0x02 inverted smiley
	0x1C, 0x3E, 0x7C, 0x3E, 0x1C, // 0x03 heart
	0x18, 0x3C, 0x7E, 0x3C, 0x18, // 0x04 diamond
	0x1C, 0x57, 0x7D, 0x57, 0x1C, // 0x05 club
	0x1C, 0x5E, 0x7F, 0x5E, 0x1C, // 0x06 spade
	0x00, 0x18, 0x3C, 0x18, 0x00, // 0x07 bullet
	0xFF, 0xE7, 0xC3, 0xE7, 0xFF, // 0x08 inverse bullet
	0x00, 0x18, 0x24, 0x18, 0x00, // 0x09 circle
	0xFF, 0xE7, 0xDB, 0xE7, 0xFF, // 0x0A inverse circle
	0x30, 0x48, 0x3A, 0x06, 0x0E, // 0x0B male
	0x26, 0x29, 0x79, 0x29, 0x26, // 0x0C female
	0x40, 0x7F, 0x05, 0x05, 0x07, // 0x0D note
	0x40, 0x7F, 0x05, 0x25, 0x3F, // 0x0E double note
	0x5A, 0x3C, 0xE7, 0x3C, 0x5A, // 0x0F sun
	0x7F, 0x3E, 0x1C, 0x1C, 0x08, // 0x10 right triangle
	0x08, 0x1C, 0x1C, 0x3E, 0x7F, // 0x11 left triangle
	0x14, 0x22, 0x7F, 0x22, 0x14, // 0x12 up/down arrow
	0x5F, 0x5F, 0x00, 0x5F, 0x5F, // 0x13 double exclaim
	0x06, 0x09, 0x7F, 0x01, 0x7F, // 0x14 pilcrow
	0x00, 0x66, 0x89, 0x95, 0x6A, // 0x15 section
	0x60, 0x60, 0x60, 0x60, 0x60, // 0x16 low bar
	0x94, 0xA2, 0xFF, 0xA2, 0x94, // 0x17 underlined arrow
	0x08, 0x04, 0x7E, 0x04, 0x08, // 0x18 up arrow
	0x10, 0x20, 0x7E, 0x20, 0x10, // 0x19 down arrow
	0x08, 0x08, 0x2A, 0x1C, 0x08, // 0x1A right arrow
	0x08, 0x1C, 0x2A, 0x08, 0x08, // 0x1B left arrow
	0x1E, 0x10, 0x10, 0x10, 0x10, // 0x1C corner
	0x0C, 0x1E, 0x0C, 0x1E, 0x0C, // 0x1D left/right arrow
	0x30, 0x38, 0x3E, 0x38, 0x30, // 0x1E up triangle
	0x06, 0x0E, 0x3E, 0x0E, 0x06, // 0x1F down triangle
	0x00, 0x00, 0x00, 0x00, 0x00, // 0x20 ' '
	0x00, 0x00, 0x5F, 0x00, 0x00, // 0x21 '!'
	0x00, 0x07, 0x00, 0x07, 0x00, // 0x22 '"'
	0x14, 0x7F, 0x14, 0x7F, 0x14, // 0x23 '#'
	0x24, 0x2A, 0x7F, 0x2A, 0x12, // 0x24 '$'
	0x23, 0x13, 0x08, 0x64, 0x62, // 0x25 '%'
	0x36, 0x49, 0x56, 0x20, 0x50, // 0x26 '&'
	0x00, 0x08, 0x07, 0x03, 0x00, // 0x27 '\''
	0x00, 0x1C, 0x22, 0x41, 0x00, // 0x28 '('
	0x00, 0x41, 0x22, 0x1C, 0x00, // 0x29 ')'
	0x2A, 0x1C, 0x7F, 0x1C, 0x2A, // 0x2A '*'
	0x08, 0x08, 0x3E, 0x08, 0x08, // 0x2B '+'
	0x00, 0x80, 0x70, 0x30, 0x00, // 0x2C ','
	0x08, 0x08, 0x08, 0x08, 0x08, // 0x2D '-'
	0x00, 0x00, 0x60, 0x60, 0x00, // 0x2E '.'
	0x20, 0x10, 0x08, 0x04, 0x02, // 0x2F '/'
	0x3E, 0x51, 0x49, 0x45, 0x3E, // 0x30 '0'
	0x00, 0x42, 0x7F, 0x40, 0x00, // 0x31 '1'
	0x72, 0x49, 0x49, 0x49, 0x46, // 0x32 '2'
	0x21, 0x41, 0x49, 0x4D, 0x33, // 0x33 '3'
	0x18, 0x14, 0x12, 0x7F, 0x10, // 0x34 '4'
	0x27, 0x45, 0x45, 0x45, 0x39, // 0x35 '5'
	0x3C, 0x4A, 0x49, 0x49, 0x31, // 0x36 '6'
	0x41, 0x21, 0x11, 0x09, 0x07, // 0x37 '7'
	0x36, 0x49, 0x49, 0x49, 0x36, // 0x38 '8'
	0x46, 0x49, 0x49, 0x29, 0x1E, // 0x39 '9'
	0x00, 0x00, 0x14, 0x00, 0x00, // 0x3A ':'
	0x00, 0x40, 0x34, 0x00, 0x00, // 0x3B ';'
	0x00, 0x08, 0x14, 0x22, 0x41, // 0x3C '<'
	0x14, 0x14, 0x14, 0x14, 0x14, // 0x3D '='
	0x00, 0x41, 0x22, 0x14, 0x08, // 0x3E '>'
	0x02, 0x01, 0x59, 0x09, 0x06, // 0x3F '?'
	0x3E, 0x41, 0x5D, 0x59, 0x4E, // 0x40 '@'
	0x7C, 0x12, 0x11, 0x12, 0x7C, // 0x41 'A'
	0x7F, 0x49, 0x49, 0x49, 0x36, // 0x42 'B'
	0x3E, 0x41, 0x41, 0x41, 0x22, // 0x43 'C'
	0x7F, 0x41, 0x41, 0x41, 0x3E, // 0x44 'D'
	0x7F, 0x49, 0x49, 0x49, 0x41, // 0x45 'E'
	0x7F, 0x09, 0x09, 0x09, 0x01, // 0x46 'F'
	0x3E, 0x41, 0x41, 0x51, 0x73, // 0x47 'G'
	0x7F, 0x08, 0x08, 0x08, 0x7F, // 0x48 'H'
	0x00, 0x41, 0x7F, 0x41, 0x00, // 0x49 'I'
	0x20, 0x40, 0x41, 0x3F, 0x01, // 0x4A 'J'
	0x7F, 0x08, 0x14, 0x22, 0x41, // 0x4B 'K'
	0x7F, 0x40, 0x40, 0x40, 0x40, // 0x4C 'L'
	0x7F, 0x02, 0x1C, 0x02, 0x7F, // 0x4D 'M'
	0x7F, 0x04, 0x08, 0x10, 0x7F, // 0x4E 'N'
	0x3E, 0x41, 0x41, 0x41, 0x3E, // 0x4F 'O'
	0x7F, 0x09, 0x09, 0x09, 0x06, // 0x50 'P'
	0x3E, 0x41, 0x51, 0x21, 0x5E, // 0x51 'Q'
	0x7F, 0x09, 0x19, 0x29, 0x46, // 0x52 'R'
	0x26, 0x49, 0x49, 0x49, 0x32, // 0x53 'S'
	0x03, 0x01, 0x7F, 0x01, 0x03, // 0x54 'T'
	0x3F, 0x40, 0x40, 0x40, 0x3F, // 0x55 'U'
	0x1F, 0x20, 0x40, 0x20, 0x1F, // 0x56 'V'
	0x3F, 0x40, 0x38, 0x40, 0x3F, // 0x57 'W'
	0x63, 0x14, 0x08, 0x14, 0x63, // 0x58 'X'
	0x03, 0x04, 0x78, 0x04, 0x03, // 0x59 'Y'
	0x61, 0x59, 0x49, 0x4D, 0x43, // 0x5A 'Z'
	0x00, 0x7F, 0x41, 0x41, 0x41, // 0x5B '['
	0x02, 0x04, 0x08, 0x10, 0x20, // 0x5C '\'
	0x00, 0x41, 0x41, 0x41, 0x7F, // 0x5D ']'
	0x04, 0x02, 0x01, 0x02, 0x04, // 0x5E '^'
	0x40, 0x40, 0x40, 0x40, 0x40, // 0x5F '_'
	0x00, 0x03, 0x07, 0x08, 0x00, // 0x60 '`'
	0x20, 0x54, 0x54, 0x78, 0x40, // 0x61 'a'
	0x7F, 0x28, 0x44, 0x44, 0x38, // 0x62 'b'
	0x38, 0x44, 0x44, 0x44, 0x28, // 0x63 'c'
	0x38, 0x44, 0x44, 0x28, 0x7F, // 0x64 'd'
	0x38, 0x54, 0x54, 0x54, 0x18, // 0x65 'e'
	0x00, 0x08, 0x7E, 0x09, 0x02, // 0x66 'f'
	0x18, 0xA4, 0xA4, 0x9C, 0x78, // 0x67 'g'
	0x7F, 0x08, 0x04, 0x04, 0x78, // 0x68 'h'
	0x00, 0x44, 0x7D, 0x40, 0x00, // 0x69 'i'
	0x20, 0x40, 0x40, 0x3D, 0x00, // 0x6A 'j'
	0x7F, 0x10, 0x28, 0x44, 0x00, // 0x6B 'k'
	0x00, 0x41, 0x7F, 0x40, 0x00, // 0x6C 'l'
	0x7C, 0x04, 0x78, 0x04, 0x78, // 0x6D 'm'
	0x7C, 0x08, 0x04, 0x04, 0x78, // 0x6E 'n'
	0x38, 0x44, 0x44, 0x44, 0x38, // 0x6F 'o'
	0xFC, 0x18, 0x24, 0x24, 0x18, // 0x70 'p'
	0x18, 0x24, 0x24, 0x18, 0xFC, // 0x71 'q'
	0x7C, 0x08, 0x04, 0x04, 0x08, // 0x72 'r'
	0x48, 0x54, 0x54, 0x54, 0x24, // 0x73 's'
	0x04, 0x04, 0x3F, 0x44, 0x24, // 0x74 't'
	0x3C, 0x40, 0x40, 0x20, 0x7C, // 0x75 'u'
	0x1C, 0x20, 0x40, 0x20, 0x1C, // 0x76 'v'
	0x3C, 0x40, 0x30, 0x40, 0x3C, // 0x77 'w'
	0x44, 0x28, 0x10, 0x28, 0x44, // 0x78 'x'
	0x4C, 0x90, 0x90, 0x90, 0x7C, // 0x79 'y'
	0x44, 0x64, 0x54, 0x4C, 0x44, // 0x7A 'z'
	0x00, 0x08, 0x36, 0x41, 0x00, // 0x7B '{'
	0x00, 0x00, 0x77, 0x00, 0x00, // 0x7C '|'
	0x00, 0x41, 0x36, 0x08, 0x00, // 0x7D '}'
	0x02, 0x01, 0x02, 0x04, 0x02, // 0x7E '~'
	0x3C, 0x26, 0x23, 0x26, 0x3C, // 0x7F house
	0x1E, 0xA1, 0xA1, 0x61, 0x12, // 0x80 C-cedilla
	0x3A, 0x40, 0x40, 0x20, 0x7A, // 0x81 u-umlaut
	0x38, 0x54, 0x54, 0x55, 0x59, // 0x82 e-acute
	0x21, 0x55, 0x55, 0x79, 0x41, // 0x83 a-circumflex
	0x21, 0x54, 0x54, 0x78, 0x41, // 0x84 a-umlaut
	0x21, 0x55, 0x54, 0x78, 0x40, // 0x85 a-grave
	0x20, 0x54, 0x55, 0x79, 0x40, // 0x86 a-ring
	0x0C, 0x1E, 0x52, 0x72, 0x12, // 0x87 c-cedilla
	0x39, 0x55, 0x55, 0x55, 0x59, // 0x88 e-circumflex
	0x39, 0x54, 0x54, 0x54, 0x59, // 0x89 e-umlaut
	0x39, 0x55, 0x54, 0x54, 0x58, // 0x8A e-grave
	0x00, 0x00, 0x45, 0x7C, 0x41, // 0x8B i-umlaut
	0x00, 0x02, 0x45, 0x7D, 0x42, // 0x8C i-circumflex
	0x00, 0x01, 0x45, 0x7C, 0x40, // 0x8D i-grave
	0x7D, 0x12, 0x11, 0x12, 0x7D, // 0x8E A-umlaut
	0xF0, 0x28, 0x25, 0x28, 0xF0, // 0x8F A-ring
	0x7C, 0x54, 0x55, 0x45, 0x00, // 0x90 E-acute
	0x20, 0x54, 0x54, 0x7C, 0x54, // 0x91 ae
	0x7C, 0x0A, 0x09, 0x7F, 0x49, // 0x92 AE
	0x32, 0x49, 0x49, 0x49, 0x32, // 0x93 o-circumflex
	0x3A, 0x44, 0x44, 0x44, 0x3A, // 0x94 o-umlaut
	0x32, 0x4A, 0x48, 0x48, 0x30, // 0x95 o-grave
	0x3A, 0x41, 0x41, 0x21, 0x7A, // 0x96 u-circumflex
	0x3A, 0x42, 0x40, 0x20, 0x78, // 0x97 u-grave
	0x00, 0x9D, 0xA0, 0xA0, 0x7D, // 0x98 y-umlaut
	0x39, 0x44, 0x44, 0x44, 0x39, // 0x99 O-umlaut
	0x3D, 0x40, 0x40, 0x40, 0x3D, // 0x9A U-umlaut
	0x3C, 0x24, 0xFF, 0x24, 0x24, // 0x9B cent
	0x48, 0x7E, 0x49, 0x43, 0x66, // 0x9C pound
	0x2B, 0x2F, 0xFC, 0x2F, 0x2B, // 0x9D yen
	0xFF, 0x09, 0x29, 0xF6, 0x20, // 0x9E peseta
	0xC0, 0x88, 0x7E, 0x09, 0x03, // 0x9F florin
	0x20, 0x54, 0x54, 0x79, 0x41, // 0xA0 a-acute
	0x00, 0x00, 0x44, 0x7D, 0x41, // 0xA1 i-acute
	0x30, 0x48, 0x48, 0x4A, 0x32, // 0xA2 o-acute
	0x38, 0x40, 0x40, 0x22, 0x7A, // 0xA3 u-acute
	0x00, 0x7A, 0x0A, 0x0A, 0x72, // 0xA4 n-tilde
	0x7D, 0x0D, 0x19, 0x31, 0x7D, // 0xA5 N-tilde
	0x26, 0x29, 0x29, 0x2F, 0x28, // 0xA6 feminine ordinal
	0x26, 0x29, 0x29, 0x29, 0x26, // 0xA7 masculine ordinal
	0x30, 0x48, 0x4D, 0x40, 0x20, // 0xA8 inverted question
	0x38, 0x08, 0x08, 0x08, 0x08, // 0xA9 reversed not
	0x08, 0x08, 0x08, 0x08, 0x38, // 0xAA not
	0x2F, 0x10, 0xC8, 0xAC, 0xBA, // 0xAB one half
	0x2F, 0x10, 0x28, 0x34, 0xFA, // 0xAC one quarter
	0x00, 0x00, 0x7B, 0x00, 0x00, // 0xAD inverted exclaim
	0x08, 0x14, 0x2A, 0x14, 0x22, // 0xAE left guillemet
	0x22, 0x14, 0x2A, 0x14, 0x08, // 0xAF right guillemet
	0x55, 0x00, 0x55, 0x00, 0x55, // 0xB0 light shade
	0xAA, 0x55, 0xAA, 0x55, 0xAA, // 0xB1 medium shade
	0xFF, 0x55, 0xFF, 0x55, 0xFF, // 0xB2 dark shade
	0x00, 0x00, 0x00, 0xFF, 0x00, // 0xB3 box vertical
	0x10, 0x10, 0x10, 0xFF, 0x00, // 0xB4 box vertical+left
	0x14, 0x14, 0x14, 0xFF, 0x00, // 0xB5
	0x10, 0x10, 0xFF, 0x00, 0xFF, // 0xB6
	0x10, 0x10, 0xF0, 0x10, 0xF0, // 0xB7
	0x14, 0x14, 0x14, 0xFC, 0x00, // 0xB8
	0x14, 0x14, 0xF7, 0x00, 0xFF, // 0xB9
	0x00, 0x00, 0xFF, 0x00, 0xFF, // 0xBA box double vertical
	0x14, 0x14, 0xF4, 0x04, 0xFC, // 0xBB
	0x14, 0x14, 0x17, 0x10, 0x1F, // 0xBC
	0x10, 0x10, 0x1F, 0x10, 0x1F, // 0xBD
	0x14, 0x14, 0x14, 0x1F, 0x00, // 0xBE
	0x10, 0x10, 0x10, 0xF0, 0x00, // 0xBF box down+left
	0x00, 0x00, 0x00, 0x1F, 0x10, // 0xC0 box up+right
	0x10, 0x10, 0x10, 0x1F, 0x10, // 0xC1
	0x10, 0x10, 0x10, 0xF0, 0x10, // 0xC2
	0x00, 0x00, 0x00, 0xFF, 0x10, // 0xC3
	0x10, 0x10, 0x10, 0x10, 0x10, // 0xC4 box horizontal
	0x10, 0x10, 0x10, 0xFF, 0x10, // 0xC5 box cross
	0x00, 0x00, 0x00, 0xFF, 0x14, // 0xC6
	0x00, 0x00, 0xFF, 0x00, 0xFF, // 0xC7
	0x00, 0x00, 0x1F, 0x10, 0x17, // 0xC8
	0x00, 0x00, 0xFC, 0x04, 0xF4, // 0xC9
	0x14, 0x14, 0x17, 0x10, 0x17, // 0xCA
	0x14, 0x14, 0xF4, 0x04, 0xF4, // 0xCB
	0x00, 0x00, 0xFF, 0x00, 0xF7, // 0xCC
	0x14, 0x14, 0x14, 0x14, 0x14, // 0xCD box double horizontal
	0x14, 0x14, 0xF7, 0x00, 0xF7, // 0xCE
	0x14, 0x14, 0x14, 0x17, 0x14, // 0xCF
	0x10, 0x10, 0x1F, 0x10, 0x1F, // 0xD0
	0x14, 0x14, 0x14, 0xF4, 0x14, // 0xD1
	0x10, 0x10, 0xF0, 0x10, 0xF0, // 0xD2
	0x00, 0x00, 0x1F, 0x10, 0x1F, // 0xD3
	0x00, 0x00, 0x00, 0x1F, 0x14, // 0xD4
	0x00, 0x00, 0x00, 0xFC, 0x14, // 0xD5
	0x00, 0x00, 0xF0, 0x10, 0xF0, // 0xD6
	0x10, 0x10, 0xFF, 0x10, 0xFF, // 0xD7
	0x14, 0x14, 0x14, 0xFF, 0x14, // 0xD8
	0x10, 0x10, 0x10, 0x1F, 0x00, // 0xD9 box up+left
	0x00, 0x00, 0x00, 0xF0, 0x10, // 0xDA box down+right
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // 0xDB full block
	0xF0, 0xF0, 0xF0, 0xF0, 0xF0, // 0xDC lower half block
	0xFF, 0xFF, 0xFF, 0x00, 0x00, // 0xDD left half block
	0x00, 0x00, 0x00, 0xFF, 0xFF, // 0xDE right half block
	0x0F, 0x0F, 0x0F, 0x0F, 0x0F, // 0xDF upper half block
	0x38, 0x44, 0x44, 0x38, 0x44, // 0xE0 alpha
	0x7C, 0x2A, 0x2A, 0x3E, 0x14, // 0xE1 sharp s
	0x7E, 0x02, 0x02, 0x06, 0x06, // 0xE2 Gamma
	0x02, 0x7E, 0x02, 0x7E, 0x02, // 0xE3 pi
	0x63, 0x55, 0x49, 0x41, 0x63, // 0xE4 Sigma
	0x38, 0x44, 0x44, 0x3C, 0x04, // 0xE5 sigma
	0x40, 0x7E, 0x20, 0x1E, 0x20, // 0xE6 mu
	0x06, 0x02, 0x7E, 0x02, 0x02, // 0xE7 tau
	0x99, 0xA5, 0xE7, 0xA5, 0x99, // 0xE8 Phi
	0x1C, 0x2A, 0x49, 0x2A, 0x1C, // 0xE9 Theta
	0x4C, 0x72, 0x01, 0x72, 0x4C, // 0xEA Omega
	0x30, 0x4A, 0x4D, 0x4D, 0x30, // 0xEB delta
	0x30, 0x48, 0x78, 0x48, 0x30, // 0xEC infinity
	0xBC, 0x62, 0x5A, 0x46, 0x3D, // 0xED phi
	0x3E, 0x49, 0x49, 0x49, 0x00, // 0xEE epsilon
	0x7E, 0x01, 0x01, 0x01, 0x7E, // 0xEF intersection
	0x2A, 0x2A, 0x2A, 0x2A, 0x2A, // 0xF0 identical
	0x44, 0x44, 0x5F, 0x44, 0x44, // 0xF1 plus-minus
	0x40, 0x51, 0x4A, 0x44, 0x40, // 0xF2 greater-equal
	0x40, 0x44, 0x4A, 0x51, 0x40, // 0xF3 less-equal
	0x00, 0x00, 0xFF, 0x01, 0x03, // 0xF4 integral top
	0xE0, 0x80, 0xFF, 0x00, 0x00, // 0xF5 integral bottom
	0x08, 0x08, 0x6B, 0x6B, 0x08, // 0xF6 divide
	0x36, 0x12, 0x36, 0x24, 0x36, // 0xF7 approximately
	0x06, 0x0F, 0x09, 0x0F, 0x06, // 0xF8 degree
	0x00, 0x00, 0x18, 0x18, 0x00, // 0xF9 bullet operator
	0x00, 0x00, 0x10, 0x10, 0x00, // 0xFA middle dot
	0x30, 0x40, 0xFF, 0x01, 0x01, // 0xFB square root
	0x00, 0x1F, 0x01, 0x01, 0x1E, // 0xFC superscript n
	0x00, 0x19, 0x1D, 0x17, 0x12, // 0xFD superscript 2
	0x00, 0x3C, 0x3C, 0x3C, 0x3C, // 0xFE filled square
	0x00, 0x00, 0x00, 0x00, 0x00, // 0xFF
}
