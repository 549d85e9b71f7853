package client

// 3x5 點陣字，給比分用
var letterGlyphs = map[rune][5]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", ".#.", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
}

const LetterWidth = 3
const LetterHeight = 5
const LetterSpacing = 1

// GetCellsFromChar 回傳字元要點亮的格子 (col, row)，沒有字型的字元回傳 nil
func GetCellsFromChar(ch rune) [][2]int {
	glyph, ok := letterGlyphs[ch]
	if !ok {
		return nil
	}

	cells := make([][2]int, 0, LetterWidth*LetterHeight)
	for row, line := range glyph {
		for col, c := range line {
			if c == '#' {
				cells = append(cells, [2]int{col, row})
			}
		}
	}
	return cells
}
