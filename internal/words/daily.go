package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey formats the UTC calendar day of t, e.g. "2024-03-09".
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex maps a calendar day onto [0, n). The salt keeps the sequence
// private to one installation. n <= 0 yields 0.
func DailyIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	v := binary.BigEndian.Uint64(mac.Sum(nil)[:8])
	return int(v % uint64(n))
}

// Daily returns the secret word for the day of date. The same list and salt
// give the same word all day.
func (s *Source) Daily(date time.Time, salt string) string {
	return s.words[DailyIndex(date, salt, len(s.words))]
}
