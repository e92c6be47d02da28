package route

// Phrasebook holds the templates a description is rendered from. Format
// verbs follow fmt; location names are passed as %s and raw identifiers as %q.
type Phrasebook struct {
	Header      string // first line of a multi-step description
	Start       string // "%s" is the start display name
	Via         string // "%s" is a waypoint display name
	Destination string // "%s" is the destination display name
	Category    string // appended to a node line, "%s" is the category

	OneStep   string
	ManySteps string // "%d" is the hop count
	Levels    string // "%d" is the level count, "%s" the comma separated levels

	AlreadyThere string // "%s" is the location display name

	BlankStart  string
	BlankTarget string
	BlankBoth   string

	UnknownStart  string // "%q" is the raw start identifier
	UnknownTarget string // "%q" is the raw target identifier
	UnknownBoth   string // "%q", "%q" are start and target

	NoRoute string // "%s", "%s" are start and target display names
	Failure string // "%v" is the underlying error
}

// English is the default phrasebook.
var English = Phrasebook{
	Header:      "Your route:",
	Start:       "Start: %s",
	Via:         "Go to: %s",
	Destination: "Destination: %s",
	Category:    " (%s)",

	OneStep:   "Route in 1 step",
	ManySteps: "Route in %d steps",
	Levels:    "This route spans %d levels: %s",

	AlreadyThere: "You are already at your destination: %s.",

	BlankStart:  "No start location given.",
	BlankTarget: "No destination given.",
	BlankBoth:   "Neither a start location nor a destination was given.",

	UnknownStart:  "Start location %q not found.",
	UnknownTarget: "Destination %q not found.",
	UnknownBoth:   "Start location %q and destination %q not found.",

	NoRoute: "No route from %s to %s. The two locations are not connected.",
	Failure: "The route could not be computed: %v",
}

// German mirrors English for German-speaking visitors.
var German = Phrasebook{
	Header:      "Ihre Route:",
	Start:       "Start: %s",
	Via:         "Gehen Sie zu: %s",
	Destination: "Ziel: %s",
	Category:    " (%s)",

	OneStep:   "Route mit 1 Schritt",
	ManySteps: "Route mit %d Schritten",
	Levels:    "Diese Route führt über %d Etagen: %s",

	AlreadyThere: "Sie befinden sich bereits am Ziel: %s.",

	BlankStart:  "Kein Startort angegeben.",
	BlankTarget: "Kein Ziel angegeben.",
	BlankBoth:   "Weder Startort noch Ziel angegeben.",

	UnknownStart:  "Startort %q nicht gefunden.",
	UnknownTarget: "Ziel %q nicht gefunden.",
	UnknownBoth:   "Startort %q und Ziel %q nicht gefunden.",

	NoRoute: "Keine Route von %s nach %s gefunden. Die Orte sind nicht verbunden.",
	Failure: "Die Route konnte nicht berechnet werden: %v",
}

// Phrasebooks maps a locale tag to its phrasebook.
var Phrasebooks = map[string]Phrasebook{
	"en": English,
	"de": German,
}

// PhrasebookFor returns the phrasebook registered for locale.
func PhrasebookFor(locale string) (Phrasebook, bool) {
	p, ok := Phrasebooks[locale]
	return p, ok
}
