package font

import "sync"

var builtinTemplates = [...]string{
	"...|...|...|...|...", // ' '
	".#.|.#.|.#.|...|.#.", // !
	"#.#|#.#|...|...|...", // "
	"#.#|###|#.#|###|#.#", // #
	".##|##.|.#.|.##|##.", // $
	"#.#|..#|.#.|#..|#.#", // %
	".#.|#.#|.#.|#.#|.##", // &
	".#.|.#.|...|...|...", // '
	"..#|.#.|.#.|.#.|..#", // (
	"#..|.#.|.#.|.#.|#..", // )
	"...|#.#|.#.|#.#|...", // *
	"...|.#.|###|.#.|...", // +
	"...|...|...|.#.|#..", // ,
	"...|...|###|...|...", // -
	"...|...|...|...|.#.", // .
	"..#|..#|.#.|#..|#..", // /
	"###|#.#|#.#|#.#|###", // 0
	".#.|##.|.#.|.#.|###", // 1
	"###|..#|###|#..|###", // 2
	"###|..#|.##|..#|###", // 3
	"#.#|#.#|###|..#|..#", // 4
	"###|#..|###|..#|###", // 5
	"###|#..|###|#.#|###", // 6
	"###|..#|.#.|.#.|.#.", // 7
	"###|#.#|###|#.#|###", // 8
	"###|#.#|###|..#|###", // 9
	"...|.#.|...|.#.|...", // :
	"...|.#.|...|.#.|#..", // ;
	"..#|.#.|#..|.#.|..#", // <
	"...|###|...|###|...", // =
	"#..|.#.|..#|.#.|#..", // >
	"###|..#|.#.|...|.#.", // ?
	"###|#.#|###|#..|###", // @
	".#.|#.#|###|#.#|#.#", // A
	"##.|#.#|##.|#.#|##.", // B
	".##|#..|#..|#..|.##", // C
	"##.|#.#|#.#|#.#|##.", // D
	"###|#..|##.|#..|###", // E
	"###|#..|##.|#..|#..", // F
	".##|#..|#.#|#.#|.##", // G
	"#.#|#.#|###|#.#|#.#", // H
	"###|.#.|.#.|.#.|###", // I
	"..#|..#|..#|#.#|.#.", // J
	"#.#|#.#|##.|#.#|#.#", // K
	"#..|#..|#..|#..|###", // L
	"#.#|###|###|#.#|#.#", // M
	"##.|#.#|#.#|#.#|#.#", // N
	".#.|#.#|#.#|#.#|.#.", // O
	"##.|#.#|##.|#..|#..", // P
	".#.|#.#|#.#|##.|.##", // Q
	"##.|#.#|##.|#.#|#.#", // R
	".##|#..|.#.|..#|##.", // S
	"###|.#.|.#.|.#.|.#.", // T
	"#.#|#.#|#.#|#.#|###", // U
	"#.#|#.#|#.#|#.#|.#.", // V
	"#.#|#.#|###|###|#.#", // W
	"#.#|#.#|.#.|#.#|#.#", // X
	"#.#|#.#|.#.|.#.|.#.", // Y
	"###|..#|.#.|#..|###", // Z
}

var (
	builtinOnce sync.Once
	builtin     *Font
)

// Builtin returns a 3×5 font covering ' ' through 'Z'. Lower case letters
// are drawn with their upper case glyphs.
func Builtin() *Font {
	builtinOnce.Do(func() {
		f, err := FromTemplate(' ', 6, builtinTemplates[:]...)
		if err != nil {
			panic(err)
		}
		builtin = f
	})
	return builtin
}
