package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockZeroPadding(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		h, m, s int
		want    string
	}{
		{0, 0, 0, "00:00:00"},
		{1, 2, 3, "01:02:03"},
		{9, 59, 59, "09:59:59"},
		{13, 5, 0, "13:05:00"},
		{23, 59, 59, "23:59:59"},
	}

	for _, c := range cases {
		instant := time.Date(2026, 8, 27, c.h, c.m, c.s, 0, time.Local)
		assert.Equal(c.want, Clock(instant))
	}
}

func TestMillisAlwaysThreeDigits(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		nanos int
		want  string
	}{
		{0, "000"},
		{1_000_000, "001"},
		{42_000_000, "042"},
		{999_000_000, "999"},
		// 999,500 microseconds truncates to 999, never rounds to 1000.
		{999_500_000, "999"},
		// Sub-millisecond remainders truncate toward zero.
		{1_999_999, "001"},
	}

	for _, c := range cases {
		instant := time.Date(2026, 8, 27, 12, 0, 0, c.nanos, time.Local)
		got := Millis(instant)
		assert.Equal(c.want, got)
		assert.Len(got, 3)
	}
}

func TestMillisCoversFullRange(t *testing.T) {
	assert := assert.New(t)

	for ms := 0; ms < 1000; ms += 7 {
		instant := time.Date(2026, 8, 27, 0, 0, 0, ms*int(time.Millisecond), time.Local)
		assert.Len(Millis(instant), 3)
	}
}

func TestFieldsIdempotent(t *testing.T) {
	assert := assert.New(t)

	instant := time.Date(2026, 8, 27, 18, 4, 31, 250_000_000, time.Local)
	c1, m1 := Fields(instant)
	c2, m2 := Fields(instant)

	assert.Equal(c1, c2)
	assert.Equal(m1, m2)
	assert.Equal("18:04:31", c1)
	assert.Equal("250", m1)
}
