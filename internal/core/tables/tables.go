// Package tables holds the two static reference tables of the service:
// the set of phrases with pre-made sign-language GIFs and the set of
// letters with still images. Both are built once at init and never
// mutated afterwards.
package tables

import "sort"

// Phrases with a corresponding GIF asset. Entries are stored in canonical
// normalized form (lowercase, no punctuation) so that lookups against
// normalized input always hit.
var phraseList = []string{
	"any questions", "are you angry", "are you busy", "are you hungry", "are you sick", "be careful",
	"can we meet tomorrow", "did you book tickets", "did you finish homework", "do you go to office",
	"do you have money", "do you want something to drink", "do you want tea or coffee", "do you watch tv",
	"dont worry", "flower is beautiful", "good afternoon", "good evening", "good morning", "good night",
	"good question", "had your lunch", "happy journey", "hello what is your name",
	"how many people are there in your family", "i am a clerk", "i am bore doing nothing",
	"i am fine", "i am sorry", "i am thinking", "i am tired", "i dont understand anything",
	"i go to a theatre", "i love to shop", "i had to say something but i forgot", "i have headache",
	"i like pink colour", "i live in nagpur", "lets go for lunch", "my mother is a homemaker",
	"my name is john", "nice to meet you", "no smoking please", "open the door", "please call me later",
	"please clean the room", "please give me your pen", "please use dustbin dont throw garbage",
	"please wait for sometime", "shall i help you", "shall we go together tommorow",
	"sign language interpreter", "sit down", "stand up", "take care", "there was traffic jam",
	"wait i am thinking", "what are you doing", "what is the problem", "what is todays date",
	"what is your father do", "what is your job", "what is your mobile number", "what is your name",
	"whats up", "when is your interview", "when we will go", "where do you stay",
	"where is the bathroom", "where is the police station", "you are wrong",
	// Single words with GIFs.
	"address", "agra", "ahemdabad", "all", "april", "assam", "august", "australia",
	"badoda", "banana", "banaras", "banglore", "bihar", "bridge", "cat", "chandigarh",
	"chennai", "christmas", "church", "clinic", "coconut", "crocodile", "dasara", "deaf",
	"december", "deer", "delhi", "dollar", "duck", "febuary", "friday", "fruits", "glass",
	"grapes", "gujrat", "hello", "hindu", "hyderabad", "india", "january", "jesus", "job",
	"july", "june", "karnataka", "kerala", "krishna", "litre", "mango", "may", "mile", "monday",
	"mumbai", "museum", "muslim", "nagpur", "october", "orange", "pakistan", "pass",
	"police station", "post office", "pune", "punjab", "rajasthan", "ram", "restaurant",
	"saturday", "september", "shop", "sleep", "southafrica", "story", "sunday",
	"tamil nadu", "temperature", "temple", "thank", "thursday", "toilet", "tomato", "town",
	"tuesday", "usa", "village", "voice", "wednesday", "weight", "welcome", "hi", "yourself",
}

var (
	phraseSet     map[string]struct{}
	sortedPhrases []string

	// Decision table for renderable letters, indexed by ASCII code.
	letterTable [128]bool
	letterCount int
)

func init() {
	phraseSet = make(map[string]struct{}, len(phraseList))
	for _, p := range phraseList {
		phraseSet[p] = struct{}{}
	}

	sortedPhrases = make([]string, 0, len(phraseSet))
	for p := range phraseSet {
		sortedPhrases = append(sortedPhrases, p)
	}
	sort.Strings(sortedPhrases)

	for r := 'a'; r <= 'z'; r++ {
		letterTable[r] = true
		letterCount++
	}
}

// IsPhrase reports whether text exactly matches a known phrase.
func IsPhrase(text string) bool {
	_, ok := phraseSet[text]
	return ok
}

// IsLetter reports whether r has a letter image asset.
func IsLetter(r rune) bool {
	return r < 128 && letterTable[r]
}

// Phrases returns the known phrases in sorted order. The returned slice is
// a copy and safe for callers to modify.
func Phrases() []string {
	out := make([]string, len(sortedPhrases))
	copy(out, sortedPhrases)
	return out
}

// PhraseCount returns the number of known phrases.
func PhraseCount() int {
	return len(phraseSet)
}

// LetterCount returns the number of renderable letters.
func LetterCount() int {
	return letterCount
}
