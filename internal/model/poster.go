package model

// Poster is an entry in the static poster catalog. Movies reference a poster
// by ID; the image itself is hosted externally and never stored by this
// service. Hint is a short description of the artwork used when prompting
// the enhancement model.
type Poster struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	Hint     string `json:"hint"`
}

// Posters is the static poster catalog. The set is fixed at build time;
// there is no API to add or remove posters.
var Posters = []Poster{
	{ID: "poster-1", ImageURL: "https://picsum.photos/seed/cosmic-odyssey/600/900", Hint: "astronaut drifting before a glowing wormhole"},
	{ID: "poster-2", ImageURL: "https://picsum.photos/seed/neon-shadows/600/900", Hint: "rain-soaked neon city street at night"},
	{ID: "poster-3", ImageURL: "https://picsum.photos/seed/dragons-spire/600/900", Hint: "stone tower wreathed in dragon fire"},
	{ID: "poster-4", ImageURL: "https://picsum.photos/seed/last-summer/600/900", Hint: "two silhouettes on a beach at sunset"},
	{ID: "poster-5", ImageURL: "https://picsum.photos/seed/cartographer/600/900", Hint: "weathered map with a hidden cipher"},
	{ID: "poster-6", ImageURL: "https://picsum.photos/seed/whispering-woods/600/900", Hint: "moonlit forest with a lone tent"},
}

// LookupPoster returns the catalog entry for the given poster ID, or false
// when the ID is unknown.
func LookupPoster(id string) (Poster, bool) {
	for _, p := range Posters {
		if p.ID == id {
			return p, true
		}
	}
	return Poster{}, false
}
