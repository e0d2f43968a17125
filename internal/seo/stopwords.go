package seo

import "strings"

// stopwords is a map of frequently occurring English words that carry no
// keyword signal. The list can be extended as needed.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {},
	"against": {}, "all": {}, "almost": {}, "along": {}, "already": {},
	"also": {}, "although": {}, "always": {}, "am": {}, "among": {},
	"an": {}, "and": {}, "another": {}, "any": {}, "anyone": {},
	"anything": {}, "are": {}, "aren't": {}, "around": {}, "as": {},
	"at": {},

	"back": {}, "be": {}, "became": {}, "because": {}, "become": {},
	"been": {}, "before": {}, "behind": {}, "being": {}, "below": {},
	"beside": {}, "besides": {}, "between": {}, "beyond": {}, "both": {},
	"but": {}, "by": {},

	"can": {}, "can't": {}, "cannot": {}, "could": {}, "couldn't": {},

	"did": {}, "didn't": {}, "do": {}, "does": {}, "doesn't": {},
	"doing": {}, "don't": {}, "done": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "enough": {}, "etc": {},
	"even": {}, "ever": {}, "every": {}, "everyone": {}, "everything": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "hadn't": {}, "has": {}, "hasn't": {}, "have": {},
	"haven't": {}, "having": {}, "he": {}, "he'd": {}, "he'll": {},
	"he's": {}, "her": {}, "here": {}, "here's": {}, "hers": {},
	"herself": {}, "him": {}, "himself": {}, "his": {}, "how": {},
	"however": {},

	"i": {}, "i'd": {}, "i'll": {}, "i'm": {}, "i've": {}, "if": {},
	"in": {}, "indeed": {}, "into": {}, "is": {}, "isn't": {}, "it": {},
	"it's": {}, "its": {}, "itself": {},

	"just": {},

	"last": {}, "least": {}, "less": {}, "let": {}, "let's": {},
	"like": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "maybe": {}, "me": {},
	"might": {}, "mine": {}, "more": {}, "most": {}, "mostly": {},
	"much": {}, "must": {}, "mustn't": {}, "my": {}, "myself": {},

	"neither": {}, "never": {}, "next": {}, "no": {}, "nobody": {},
	"none": {}, "nor": {}, "not": {}, "nothing": {}, "now": {},
	"nowhere": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "onto": {}, "or": {}, "other": {}, "others": {},
	"otherwise": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {},
	"over": {}, "own": {},

	"per": {}, "perhaps": {}, "please": {},

	"rather": {},

	"same": {}, "see": {}, "seem": {}, "seemed": {}, "seems": {},
	"several": {}, "she": {}, "she'd": {}, "she'll": {}, "she's": {},
	"should": {}, "shouldn't": {}, "since": {}, "so": {}, "some": {},
	"someone": {}, "something": {}, "sometimes": {}, "somewhere": {},
	"still": {}, "such": {},

	"take": {}, "than": {}, "that": {}, "that's": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "themselves": {}, "then": {},
	"there": {}, "there's": {}, "therefore": {}, "these": {}, "they": {},
	"they'd": {}, "they'll": {}, "they're": {}, "they've": {},
	"this": {}, "those": {}, "through": {}, "throughout": {}, "thus": {},
	"to": {}, "together": {}, "too": {}, "toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},

	"very": {}, "via": {},

	"was": {}, "wasn't": {}, "we": {}, "we'd": {}, "we'll": {},
	"we're": {}, "we've": {}, "well": {}, "were": {}, "weren't": {},
	"what": {}, "what's": {}, "when": {}, "whenever": {}, "where": {},
	"where's": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"who's": {}, "whose": {}, "why": {}, "will": {}, "with": {},
	"within": {}, "without": {}, "won't": {}, "would": {},
	"wouldn't": {},

	"yet": {}, "you": {}, "you'd": {}, "you'll": {}, "you're": {},
	"you've": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {},
}

// IsStopword reports whether word is a common English word that should be
// excluded from keyword counts.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}
