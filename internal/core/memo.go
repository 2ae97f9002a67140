package core

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type Memo struct {
	MeetingTitle string       `json:"meetingTitle"`
	Date         string       `json:"date"`
	Sections     MemoSections `json:"sections"`
	Metadata     MemoMetadata `json:"metadata"`
}

type MemoSections struct {
	MeetingContext         string               `json:"meetingContext"`
	AttendeeBackgrounds    []AttendeeBackground `json:"attendeeBackgrounds"`
	KeyTopics              []string             `json:"keyTopics"`
	SuggestedTalkingPoints []string             `json:"suggestedTalkingPoints"`
	RecentDevelopments     []Development        `json:"recentDevelopments"`
	RelationshipHistory    string               `json:"relationshipHistory"`
}

type AttendeeBackground struct {
	Name    string `json:"name"`
	Context string `json:"context"`
}

type Development struct {
	Topic  string `json:"topic"`
	Detail string `json:"detail"`
}

type MemoMetadata struct {
	GeneratedAt string     `json:"generatedAt"`
	DataSources []string   `json:"dataSources"`
	Confidence  Confidence `json:"confidence"`
}
