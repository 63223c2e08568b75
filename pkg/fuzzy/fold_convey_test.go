package fuzzy

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFoldUpperAnomalies(t *testing.T) {
	Convey("Given the narrow, fixed case-fold table", t, func() {
		Convey("ASCII lowercase folds by subtracting 32", func() {
			So(foldUpper('a'), ShouldEqual, 'A')
			So(foldUpper('z'), ShouldEqual, 'Z')
		})

		Convey("U+00DF (sharp s) is excluded from the Latin-1 shift", func() {
			So(foldUpper(0x00DF), ShouldEqual, rune(0x00DF))
		})

		Convey("U+00FF falls outside the upper bound and is left unfolded", func() {
			So(foldUpper(0x00FF), ShouldEqual, rune(0x00FF))
		})

		Convey("Latin Extended-A folds odd code points to the preceding even one", func() {
			So(foldUpper(0x0101), ShouldEqual, rune(0x0100))
			So(foldUpper(0x0103), ShouldEqual, rune(0x0102))
		})

		Convey("a code point outside every rule is left unchanged", func() {
			So(foldUpper('9'), ShouldEqual, rune('9'))
		})
	})
}
