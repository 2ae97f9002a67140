package memo

import (
	"strings"

	"github.com/sandevgo/tuskmemo/internal/core"
)

const (
	TopicBudget         = "Budget & Financial Planning"
	TopicInfrastructure = "Infrastructure & Capital Improvements"
	TopicStaffing       = "Staffing & Human Resources"
	TopicPrograms       = "Program Expansion"
)

type keywordRule struct {
	keywords []string
	topic    string
}

var (
	// what is on the agenda
	eventTopicRules = []keywordRule{
		{keywords: []string{"budget"}, topic: TopicBudget},
		{keywords: []string{"infrastructure", "capital"}, topic: TopicInfrastructure},
		{keywords: []string{"staffing", "teacher"}, topic: TopicStaffing},
	}

	// what the organization pursues strategically
	initiativeTopicRules = []keywordRule{
		{keywords: []string{"infrastructure"}, topic: TopicInfrastructure},
		{keywords: []string{"teacher", "retention"}, topic: TopicStaffing},
		{keywords: []string{"after-school", "program"}, topic: TopicPrograms},
	}

	// what individual attendees care about
	priorityTopicRules = []keywordRule{
		{keywords: []string{"retention", "compensation"}, topic: TopicStaffing},
		{keywords: []string{"infrastructure"}, topic: TopicInfrastructure},
		{keywords: []string{"budget", "funding"}, topic: TopicBudget},
		{keywords: []string{"program"}, topic: TopicPrograms},
	}
)

// topicSet keeps the first-seen order of labels.
type topicSet struct {
	order []string
	seen  map[string]struct{}
}

func newTopicSet() *topicSet {
	return &topicSet{seen: make(map[string]struct{})}
}

func (s *topicSet) add(topic string) {
	if _, ok := s.seen[topic]; ok {
		return
	}
	s.seen[topic] = struct{}{}
	s.order = append(s.order, topic)
}

func (s *topicSet) apply(rules []keywordRule, text string) {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if containsAny(lower, r.keywords) {
			s.add(r.topic)
		}
	}
}

// ExtractTopics scans the event description, the organization's key
// initiatives and every attendee priority for known keywords.
func ExtractTopics(event *core.Event, org *core.Organization, profiles []core.Profile) []string {
	set := newTopicSet()

	if event != nil {
		set.apply(eventTopicRules, event.Description)
	}
	if org != nil {
		for _, initiative := range org.KeyInitiatives {
			set.apply(initiativeTopicRules, initiative)
		}
	}
	for _, p := range profiles {
		for _, priority := range p.Priorities {
			set.apply(priorityTopicRules, priority)
		}
	}

	if set.order == nil {
		return []string{}
	}
	return set.order
}

func hasTopic(topics []string, topic string) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}

// containsAny expects lower to be lowercased already.
func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
