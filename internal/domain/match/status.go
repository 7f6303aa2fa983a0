package match

import (
	"strconv"
	"strings"
)

// Status is the match lifecycle state. Values outside the known set are kept
// verbatim (lowercased) so upstream additions do not break parsing.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusResult    Status = "result"
	StatusDormant   Status = "dormant"
	StatusCancelled Status = "cancelled"
)

var statusAliases = map[string]Status{
	"scheduled":   StatusScheduled,
	"fixture":     StatusScheduled,
	"forthcoming": StatusScheduled,
	"upcoming":    StatusScheduled,
	"pre":         StatusScheduled,
	"live":        StatusLive,
	"current":     StatusLive,
	"in progress": StatusLive,
	"stumps":      StatusLive,
	"result":      StatusResult,
	"complete":    StatusResult,
	"completed":   StatusResult,
	"post":        StatusResult,
	"dormant":     StatusDormant,
	"abandoned":   StatusDormant,
	"cancelled":   StatusCancelled,
	"canceled":    StatusCancelled,
}

// ParseStatus maps an upstream status string onto Status.
func ParseStatus(raw string) Status {
	value := strings.ToLower(strings.TrimSpace(raw))
	if mapped, ok := statusAliases[value]; ok {
		return mapped
	}
	return Status(value)
}

func (s Status) Known() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusResult, StatusDormant, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsDormant() bool {
	return s == StatusDormant
}

const (
	ClassTest  = "Test"
	ClassODI   = "ODI"
	ClassT20I  = "T20I"
	ClassWTest = "WTest"
	ClassWODI  = "WODI"
	ClassWT20I = "WT20I"
)

var internationalClassByID = map[int64]string{
	1:  ClassTest,
	2:  ClassODI,
	3:  ClassT20I,
	10: ClassWT20I,
	11: ClassWODI,
	12: ClassWTest,
}

// InternationalClass maps the numeric international class id to its label.
// Unknown ids yield "".
func InternationalClass(id int64) string {
	return internationalClassByID[id]
}

const DefaultBallsPerOver = 6

const (
	TossCodeBat  = "1"
	TossCodeBowl = "2"
	TossNameBat  = "bat"
	TossNameBowl = "bowl"
)

// TossName maps a decision code to its name. Unknown non-empty codes pass
// through unchanged.
func TossName(code string) string {
	switch strings.TrimSpace(code) {
	case "":
		return ""
	case TossCodeBat:
		return TossNameBat
	case TossCodeBowl:
		return TossNameBowl
	default:
		return strings.TrimSpace(code)
	}
}

// TossCode maps a decision name back to its code.
func TossCode(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return ""
	case TossNameBat, "batting", "bat first":
		return TossCodeBat
	case TossNameBowl, "bowling", "field", "fielding", "bowl first":
		return TossCodeBowl
	default:
		return strings.TrimSpace(name)
	}
}

// TossCodeFromChoice maps the numeric toss choice used by the page-data shape.
func TossCodeFromChoice(choice int64) string {
	if choice <= 0 {
		return ""
	}
	return strconv.FormatInt(choice, 10)
}

// TossConsistent reports whether a code/name pair agree.
func TossConsistent(code, name string) bool {
	switch code {
	case TossCodeBat:
		return name == TossNameBat
	case TossCodeBowl:
		return name == TossNameBowl
	case "":
		return name == ""
	default:
		return name == TossName(code)
	}
}

// InferToss derives the decision when upstream leaves it blank: the toss
// winner batted first means they chose to bat.
func InferToss(tossWinnerID, firstInningsBattingTeamID string) (code, name string) {
	if tossWinnerID == "" || firstInningsBattingTeamID == "" {
		return "", ""
	}
	if tossWinnerID == firstInningsBattingTeamID {
		return TossCodeBat, TossNameBat
	}
	return TossCodeBowl, TossNameBowl
}
