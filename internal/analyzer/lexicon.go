package analyzer

import "regexp"

// Lexicon holds every static word table the analysis stages read. It is
// built once at startup and never mutated afterwards, so a single instance
// is safe to share across concurrent analyses.
type Lexicon struct {
	positiveWeights map[string]int
	negativeWeights map[string]int

	negationPhrases []string
	emphasisPhrases []string

	stopWords map[string]struct{}

	categories []category

	hashtagPools   map[string][]string
	sentimentTags  map[string][]string
	engagementTags []string

	ctaWords []string

	defaultTopics   []string
	defaultHashtags []string
}

type category struct {
	name    string
	pattern *regexp.Regexp
}

// DefaultLexicon builds the canonical lexicon.
func DefaultLexicon() *Lexicon {
	lex := &Lexicon{
		negationPhrases: []string{"not happy", "don't like", "doesn't work", "isn't good", "no good"},
		emphasisPhrases: []string{"very happy", "so good", "really love", "extremely pleased"},
		ctaWords:        []string{"share", "comment", "like", "follow", "click", "learn", "discover", "join"},
		defaultTopics:   []string{"General", "Content"},
		defaultHashtags: []string{"#SocialMedia", "#Content", "#Engagement"},
	}

	lex.positiveWeights = buildWeights(
		[]string{"love", "amazing", "excellent", "fantastic", "perfect", "brilliant", "outstanding", "wonderful", "awesome", "fabulous"},
		[]string{"good", "great", "nice", "happy", "pleased", "satisfied", "delighted", "joy", "exciting", "beautiful"},
		[]string{"like", "okay", "fine", "decent", "acceptable", "pleasant", "comfortable", "cool"},
	)
	lex.negativeWeights = buildWeights(
		[]string{"hate", "terrible", "awful", "horrible", "disgusting", "hateful", "disastrous", "miserable", "tragic", "devastating"},
		[]string{"bad", "sad", "angry", "upset", "disappointed", "frustrated", "annoyed", "problem", "issue", "difficult"},
		[]string{"dislike", "unhappy", "concerned", "worried", "bother", "trouble", "challenge", "hard"},
	)

	lex.stopWords = make(map[string]struct{})
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "must", "can", "this", "that", "these", "those",
		"about", "very", "really", "just", "like", "more", "some", "such", "only",
		"also", "than", "then", "when", "where", "why", "how", "what", "which",
		"who", "whom", "their", "there", "here", "from", "into", "upon", "your",
		"my", "our", "its", "him", "her", "them",
	} {
		lex.stopWords[w] = struct{}{}
	}

	// Category order decides ties: first maximum wins.
	lex.categories = []category{
		{"technology", regexp.MustCompile(`\b(tech|software|code|programming|ai|digital|computer|data|app|website)\b`)},
		{"business", regexp.MustCompile(`\b(business|startup|entrepreneur|marketing|sales|money|career|work|office)\b`)},
		{"lifestyle", regexp.MustCompile(`\b(life|health|fitness|travel|food|home|family|relationship|wellness)\b`)},
		{"creative", regexp.MustCompile(`\b(design|art|creative|photo|video|music|write|content|inspiration)\b`)},
		{"education", regexp.MustCompile(`\b(learn|education|study|tips|howto|guide|tutorial|knowledge|skill)\b`)},
	}

	lex.hashtagPools = map[string][]string{
		"technology": {
			"Tech", "Innovation", "Digital", "Future", "AI", "TechNews", "Technology",
			"Software", "Programming", "Coding", "Developer", "IT", "DigitalTransformation",
			"TechTips", "Computer", "Internet", "WebDevelopment", "DataScience",
		},
		"business": {
			"Entrepreneur", "Startup", "BusinessTips", "Leadership", "Success", "Marketing",
			"Sales", "Finance", "Money", "Career", "Work", "Office", "Professional",
			"BusinessStrategy", "Management", "Productivity", "SuccessTips",
		},
		"lifestyle": {
			"LifeHacks", "Productivity", "SelfCare", "Motivation", "Growth", "Health",
			"Fitness", "Wellness", "Travel", "Food", "Home", "Family", "Relationships",
			"Inspiration", "Happiness", "Mindfulness", "PersonalDevelopment",
		},
		"creative": {
			"Creativity", "Design", "Inspiration", "Art", "Ideas", "Photography",
			"Music", "Writing", "ContentCreation", "GraphicDesign", "Creative",
			"Artist", "DigitalArt", "Illustration", "CreativeProcess",
		},
		"education": {
			"Learning", "Knowledge", "Tips", "HowTo", "Education", "Study",
			"Students", "Teacher", "OnlineLearning", "Skills", "Tutorial",
			"KnowledgeShare", "Educational", "StudyTips",
		},
		"general": {
			"Tips", "Advice", "Help", "Support", "Community", "Daily",
			"Life", "Update", "News", "Info", "Fact", "Learn",
		},
	}

	lex.sentimentTags = map[string][]string{
		"POSITIVE": {"#PositiveVibes", "#GoodNews", "#Happy"},
		"NEGATIVE": {"#RealTalk", "#HonestThoughts", "#Discussion"},
		"NEUTRAL":  {"#Thoughts", "#Perspective", "#Insights"},
	}
	lex.engagementTags = []string{"#SocialMediaTips", "#ContentCreation", "#DigitalMarketing"}

	return lex
}

// buildWeights assigns strong=3, medium=2, weak=1. A word listed in more
// than one tier keeps its strongest weight.
func buildWeights(strong, medium, weak []string) map[string]int {
	weights := make(map[string]int, len(strong)+len(medium)+len(weak))
	for _, w := range strong {
		weights[w] = 3
	}
	for _, w := range medium {
		if _, ok := weights[w]; !ok {
			weights[w] = 2
		}
	}
	for _, w := range weak {
		if _, ok := weights[w]; !ok {
			weights[w] = 1
		}
	}
	return weights
}

// IsStopWord reports whether w belongs to the stop-word set.
func (l *Lexicon) IsStopWord(w string) bool {
	_, ok := l.stopWords[w]
	return ok
}
