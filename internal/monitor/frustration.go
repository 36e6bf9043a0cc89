package monitor

const (
	// BlockThreshold is the consecutive-wrong count that blocks a topic.
	BlockThreshold = 3

	// CooldownQuestions is how many further answers after the first
	// block before blocks and counters reset. Rarely reached within a
	// typical 5–10 question session.
	CooldownQuestions = 10
)

// FrustrationState tracks per-topic consecutive errors for one session.
type FrustrationState struct {
	ConsecutiveErrors   map[string]int
	BlockedTopics       map[string]bool
	LastTopic           string
	QuestionsSinceBlock int

	seenTopics map[string]bool
}

// NewFrustrationState returns an empty frustration detector.
func NewFrustrationState() *FrustrationState {
	return &FrustrationState{
		ConsecutiveErrors: make(map[string]int),
		BlockedTopics:     make(map[string]bool),
		seenTopics:        make(map[string]bool),
	}
}

// Observe records one answered question. A correct answer resets that
// topic's consecutive-error counter; the third consecutive wrong answer
// blocks the topic. Returns true when every distinct topic seen this
// session is now blocked, which ends the session.
func (fr *FrustrationState) Observe(topic string, correct bool) bool {
	fr.LastTopic = topic
	fr.seenTopics[topic] = true

	if correct {
		fr.ConsecutiveErrors[topic] = 0
	} else {
		fr.ConsecutiveErrors[topic]++
		if fr.ConsecutiveErrors[topic] >= BlockThreshold {
			fr.BlockedTopics[topic] = true
		}
	}

	allBlocked := len(fr.BlockedTopics) > 0 && fr.allSeenBlocked()

	// Cooldown ticks once any topic is blocked; when it expires the
	// learner gets a clean slate.
	if len(fr.BlockedTopics) > 0 && !allBlocked {
		fr.QuestionsSinceBlock++
		if fr.QuestionsSinceBlock >= CooldownQuestions {
			fr.reset()
		}
	}

	return allBlocked
}

// IsBlocked reports whether a topic is currently blocked.
func (fr *FrustrationState) IsBlocked(topic string) bool {
	return fr.BlockedTopics[topic]
}

func (fr *FrustrationState) allSeenBlocked() bool {
	for topic := range fr.seenTopics {
		if !fr.BlockedTopics[topic] {
			return false
		}
	}
	return true
}

func (fr *FrustrationState) reset() {
	fr.ConsecutiveErrors = make(map[string]int)
	fr.BlockedTopics = make(map[string]bool)
	fr.QuestionsSinceBlock = 0
}
