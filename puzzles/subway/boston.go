package subway

var bostonLines = map[string][]string{
	"blue":   {"bowdoin", "government", "state", "aquarium", "maverick", "airport", "suffolk", "revere", "wonderland"},
	"orange": {"oakgrove", "sullivan", "haymarket", "state", "downtown", "chinatown", "tufts", "backbay", "foresthills"},
	"green":  {"lechmere", "science", "north", "haymarket", "government", "park", "copley", "kenmore", "newton", "riverside"},
	"red":    {"alewife", "davis", "porter", "harvard", "central", "mit", "charles", "park", "downtown", "south", "umass", "mattapan"},
}

// Boston returns a simplified map of the Boston subway.
func Boston() *System {
	s, err := New("boston", bostonLines)
	if err != nil {
		panic(err) // static data
	}
	return s
}
