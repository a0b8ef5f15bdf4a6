package models

// TextStatistics describes the character make-up of a text.
// Only ASCII letters count as alphabetic.
type TextStatistics struct {
	TotalChars         int `json:"total_chars"`
	AlphabeticChars    int `json:"alphabetic_chars"`
	NonAlphabeticChars int `json:"non_alphabetic_chars"`
	UppercaseChars     int `json:"uppercase_chars"`
	LowercaseChars     int `json:"lowercase_chars"`
	Words              int `json:"words"`
}
