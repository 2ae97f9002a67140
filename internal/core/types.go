package core

const (
	TuskName      = "TuskMemo"
	TuskUserAgent = "TuskMemo-Briefing/0.1"
	TaskVersion   = "0.1.0"
)

type MeetingType string

const (
	MeetingInternal MeetingType = "internal"
	MeetingExternal MeetingType = "external"
	MeetingPublic   MeetingType = "public"
)

type InteractionType string

const (
	InteractionMeeting InteractionType = "meeting"
	InteractionEmail   InteractionType = "email"
	InteractionCall    InteractionType = "call"
	InteractionEvent   InteractionType = "event"
)

type Relationship string

const (
	RelationshipPartner     Relationship = "partner"
	RelationshipConstituent Relationship = "constituent"
	RelationshipVendor      Relationship = "vendor"
	RelationshipOther       Relationship = "other"
)

// Event is a calendar entry. Datetime is ISO-8601, usually with an offset.
type Event struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Datetime    string      `json:"datetime" yaml:"datetime"`
	Location    string      `json:"location" yaml:"location"`
	Attendees   []Attendee  `json:"attendees" yaml:"attendees"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	MeetingType MeetingType `json:"meetingType" yaml:"meetingType"`
}

// Attendee references a Profile loosely through ProfileID.
type Attendee struct {
	Name         string `json:"name" yaml:"name"`
	Title        string `json:"title" yaml:"title"`
	Organization string `json:"organization" yaml:"organization"`
	ProfileID    string `json:"profileId,omitempty" yaml:"profileId,omitempty"`
}

type Profile struct {
	ID                 string        `json:"id" yaml:"id"`
	Name               string        `json:"name" yaml:"name"`
	Title              string        `json:"title" yaml:"title"`
	Organization       string        `json:"organization" yaml:"organization"`
	Bio                string        `json:"bio" yaml:"bio"`
	RecentInteractions []Interaction `json:"recentInteractions" yaml:"recentInteractions"`
	Priorities         []string      `json:"priorities" yaml:"priorities"`
	RelationshipNotes  string        `json:"relationshipNotes,omitempty" yaml:"relationshipNotes,omitempty"`
}

type Interaction struct {
	Date    string          `json:"date" yaml:"date"`
	Type    InteractionType `json:"type" yaml:"type"`
	Summary string          `json:"summary" yaml:"summary"`
}

type Organization struct {
	Name           string       `json:"name" yaml:"name"`
	Description    string       `json:"description" yaml:"description"`
	RecentNews     []NewsItem   `json:"recentNews" yaml:"recentNews"`
	KeyInitiatives []string     `json:"keyInitiatives" yaml:"keyInitiatives"`
	Relationship   Relationship `json:"relationship" yaml:"relationship"`
}

type NewsItem struct {
	Headline string `json:"headline" yaml:"headline"`
	Date     string `json:"date" yaml:"date"`
	Source   string `json:"source" yaml:"source"`
	Summary  string `json:"summary" yaml:"summary"`
}

// Bundle groups the inputs of a single memo as handed over by a source.
type Bundle struct {
	Name         string        `json:"name,omitempty" yaml:"name,omitempty"`
	Event        *Event        `json:"event" yaml:"event"`
	Profiles     []Profile     `json:"profiles" yaml:"profiles"`
	Organization *Organization `json:"organization" yaml:"organization"`
}
