package ganzhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKoreanReading(t *testing.T) {
	assert.Equal(t, "갑자", New(0).Korean())
	assert.Equal(t, "계해", New(59).Korean())
	assert.Equal(t, "경오", New(6).Korean())
}

func TestElements(t *testing.T) {
	assert.Equal(t, "목", Stem(0).Element()) // 甲
	assert.Equal(t, "수", Stem(9).Element()) // 癸
	assert.Equal(t, "수", Branch(0).Element()) // 子
	assert.Equal(t, "토", Branch(1).Element()) // 丑
	assert.Equal(t, "화", Branch(6).Element()) // 午
}

func TestAnimals(t *testing.T) {
	assert.Equal(t, "🐭", Branch(0).Animal())
	assert.Equal(t, "🐷", Branch(11).Animal())
}
