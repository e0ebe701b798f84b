package cachedresults

import (
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/travigo/ctsearch/pkg/ctdf"
)

const (
	TimetablesTTL     = 60 * time.Second
	AccommodationsTTL = 300 * time.Second
	PricesTTL         = 120 * time.Second
)

// keyPartEscaper keeps keys readable while making ':' inside a part distinct from the delimiter
var keyPartEscaper = strings.NewReplacer("%", "%25", ":", "%3A")

func buildKey(namespace string, parts ...string) string {
	var key strings.Builder
	key.WriteString(namespace)

	for _, part := range parts {
		key.WriteString(":")
		key.WriteString(keyPartEscaper.Replace(part))
	}

	return key.String()
}

func TimetablesKey(from string, to string, date string, adults int, children int) string {
	return buildKey("timetables", from, to, date, strconv.Itoa(adults), strconv.Itoa(children))
}

func AccommodationsKey(vehicleID string, departureTime string) string {
	return buildKey("accommodations", vehicleID, departureTime)
}

// PricesKey appends the url encoded JSON of the sorted bonus codes when there are any
func PricesKey(vehicleID string, departureTime string, accommodation string, pax ctdf.PaxType, bonus []ctdf.BonusType) string {
	key := buildKey("prices", vehicleID, departureTime, accommodation, string(pax))

	if len(bonus) == 0 {
		return key
	}

	sortedBonus := make([]string, len(bonus))
	for i, bonusType := range bonus {
		sortedBonus[i] = string(bonusType)
	}
	sort.Strings(sortedBonus)

	bonusJSON, _ := json.Marshal(sortedBonus)

	return key + ":" + url.QueryEscape(string(bonusJSON))
}
