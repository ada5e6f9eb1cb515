package wellness

import "strings"

type Classification struct {
	Topics []Topic
	Crisis bool
}

// HasTopic reports whether topic was matched.
func (c Classification) HasTopic(topic Topic) bool {
	return hasTopic(c.Topics, topic)
}

func normalizeMessage(message string) string {
	return strings.ToLower(message)
}

// Classify lowercases message once and runs topic and crisis detection on it.
// Matching is plain substring containment, so "nighttime" still hits "night".
func Classify(message string) Classification {
	lower := normalizeMessage(message)
	return Classification{
		Topics: detectTopics(lower),
		Crisis: isCrisis(lower),
	}
}

func detectTopics(lower string) []Topic {
	topics := make([]Topic, 0, 2)
	for _, entry := range topicTable {
		if containsAnyKeyword(lower, entry.Keywords) {
			topics = append(topics, entry.Topic)
		}
	}
	return topics
}

func isCrisis(lower string) bool {
	return containsAnyKeyword(lower, crisisPhrases)
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func hasTopic(topics []Topic, topic Topic) bool {
	for _, item := range topics {
		if item == topic {
			return true
		}
	}
	return false
}

func joinTopics(topics []Topic) string {
	names := make([]string, 0, len(topics))
	for _, topic := range topics {
		names = append(names, string(topic))
	}
	return strings.Join(names, ", ")
}
