package ground

// Record describes a venue. JSON supplies the descriptive block; the
// established date and alternative names only exist on the rendered page.
type Record struct {
	GroundID    int64    `json:"ground_id"`
	FullName    string   `json:"full_name"`
	ShortName   string   `json:"short_name"`
	Capacity    *int     `json:"capacity"`
	Grass       bool     `json:"grass"`
	Indoor      bool     `json:"indoor"`
	Address     Address  `json:"address"`
	Established *string  `json:"established"`
	AlsoKnownAs *string  `json:"also_known_as"`
	Floodlights *string  `json:"floodlights"`
	HomeTeams   []string `json:"home_teams"`
}

type Address struct {
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Country *string `json:"country"`
	Summary *string `json:"summary"`
}

// Merge fills page-only fields from another record.
func (r Record) Merge(page Record) Record {
	if r.Established == nil {
		r.Established = page.Established
	}
	if r.AlsoKnownAs == nil {
		r.AlsoKnownAs = page.AlsoKnownAs
	}
	if r.Floodlights == nil {
		r.Floodlights = page.Floodlights
	}
	if len(r.HomeTeams) == 0 {
		r.HomeTeams = page.HomeTeams
	}
	if r.FullName == "" {
		r.FullName = page.FullName
	}
	return r
}
