package tag

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies the settlement flow a transfer belongs to.
type Kind string

const (
	KindSweep  Kind = "SWEEP"
	KindDonate Kind = "DONATE"
)

// kindSynonyms lists the markers historically written into transfer memos for
// each kind. Matching accepts any of them so records created under older
// formats still count as completed settlements.
var kindSynonyms = map[Kind][]string{
	KindSweep:  {"SWEEP", "SAVING"},
	KindDonate: {"DONATE", "DONATION"},
}

const (
	prefix    = "TGL"
	delimiter = "|"
)

// Record is the part of a bank transaction the codec inspects.
type Record struct {
	Summary string
	Memo    string
}

// Encode builds the canonical idempotency marker embedded in a transfer's
// summary and memo: TGL|<KIND>|u<userID>|<period>.
func Encode(kind Kind, userID int, periodTag string) string {
	return strings.Join([]string{prefix, string(kind), fmt.Sprintf("u%d", userID), periodTag}, delimiter)
}

// PeriodTag returns the tag for the settlement week containing t: the date of
// that ISO week's Monday, formatted 2006-01-02.
func PeriodTag(t time.Time) string {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := t.AddDate(0, 0, 1-weekday)
	return monday.Format("2006-01-02")
}

// Matches reports whether rec carries the marker for the given kind, user and
// period. All three components must be present in the summary and memo taken
// together; the kind component may appear under any historical synonym.
func Matches(rec Record, kind Kind, userID int, periodTag string) bool {
	text := rec.Summary + " " + rec.Memo

	kindFound := false
	for _, syn := range kindSynonyms[kind] {
		if strings.Contains(text, syn) {
			kindFound = true
			break
		}
	}
	if !kindFound {
		return false
	}
	if !containsUserToken(text, userID) {
		return false
	}
	return strings.Contains(text, periodTag)
}

// containsUserToken looks for u<id> not followed by another digit, so the tag
// for user 4 never matches a record belonging to user 42.
func containsUserToken(text string, userID int) bool {
	token := fmt.Sprintf("u%d", userID)
	for i := 0; ; i += len(token) {
		j := strings.Index(text[i:], token)
		if j < 0 {
			return false
		}
		i += j
		next := i + len(token)
		if next >= len(text) || text[next] < '0' || text[next] > '9' {
			return true
		}
	}
}
