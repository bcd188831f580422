package ganzhi

// Korean readings, five-phase elements and zodiac animals for rendering.
// These are display mappings consumed by the report layer; the cycle
// arithmetic never depends on them.

var stemKorean = [10]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}

var branchKorean = [12]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}

// Five phases keyed by stem: wood wood fire fire earth earth metal metal water water.
var stemElement = [10]string{"목", "목", "화", "화", "토", "토", "금", "금", "수", "수"}

var branchElement = [12]string{"수", "토", "목", "목", "토", "화", "화", "토", "금", "금", "토", "수"}

var branchAnimal = [12]string{"🐭", "🐮", "🐯", "🐰", "🐲", "🐍", "🐴", "🐑", "🐒", "🐔", "🐶", "🐷"}

// Korean returns the hangul reading of the stem.
func (s Stem) Korean() string {
	return stemKorean[s]
}

// Element returns the five-phase element of the stem.
func (s Stem) Element() string {
	return stemElement[s]
}

// Korean returns the hangul reading of the branch.
func (b Branch) Korean() string {
	return branchKorean[b]
}

// Element returns the five-phase element of the branch.
func (b Branch) Element() string {
	return branchElement[b]
}

// Animal returns the zodiac animal emoji of the branch.
func (b Branch) Animal() string {
	return branchAnimal[b]
}

// Korean renders the two-syllable hangul reading of the full code,
// e.g. "갑자" for 甲子.
func (i Index) Korean() string {
	return stemKorean[i%10] + branchKorean[i%12]
}
