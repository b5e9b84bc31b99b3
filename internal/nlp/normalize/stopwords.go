package normalize

import "github.com/3moscas/tgbot/internal/model"

// stopwords holds per-language stopword sets. The lists follow the usual
// NLTK inventories for Portuguese and English, trimmed of single-character
// entries that the length filter already removes.
var stopwords = map[model.Language]map[string]struct{}{
	model.LanguagePortuguese: toSet([]string{
		"ao", "aos", "aquela", "aquelas", "aquele", "aqueles", "aquilo",
		"as", "até", "com", "como", "da", "das", "de", "dela", "delas",
		"dele", "deles", "depois", "do", "dos", "ela", "elas", "ele",
		"eles", "em", "entre", "era", "eram", "essa", "essas", "esse",
		"esses", "esta", "estas", "este", "estes", "estou", "está",
		"estão", "eu", "foi", "fomos", "for", "foram", "fosse", "fossem",
		"fui", "havia", "isso", "isto", "já", "lhe", "lhes", "mais",
		"mas", "me", "mesmo", "meu", "meus", "minha", "minhas", "muito",
		"na", "nas", "nem", "no", "nos", "nossa", "nossas", "nosso",
		"nossos", "num", "numa", "não", "nós", "os", "ou", "para", "pela",
		"pelas", "pelo", "pelos", "por", "qual", "quando", "que", "quem",
		"se", "seja", "sejam", "sem", "ser", "será", "serão", "seu",
		"seus", "somos", "sou", "sua", "suas", "são", "só", "também",
		"te", "tem", "temos", "tenho", "teu", "teus", "tinha", "tinham",
		"tu", "tua", "tuas", "tem", "um", "uma", "você", "vocês", "vos",
		"às", "éramos",
	}),
	model.LanguageEnglish: toSet([]string{
		"about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "aren't", "as", "at", "be", "because",
		"been", "before", "being", "below", "between", "both", "but",
		"by", "can", "cannot", "could", "couldn't", "did", "didn't",
		"do", "does", "doesn't", "doing", "don't", "down", "during",
		"each", "few", "for", "from", "further", "had", "hadn't", "has",
		"hasn't", "have", "haven't", "having", "he", "her", "here",
		"hers", "herself", "him", "himself", "his", "how", "if", "in",
		"into", "is", "isn't", "it", "its", "itself", "just", "me",
		"more", "most", "my", "myself", "no", "nor", "not", "now", "of",
		"off", "on", "once", "only", "or", "other", "our", "ours",
		"ourselves", "out", "over", "own", "same", "she", "should",
		"shouldn't", "so", "some", "such", "than", "that", "the",
		"their", "theirs", "them", "themselves", "then", "there",
		"these", "they", "this", "those", "through", "to", "too",
		"under", "until", "up", "very", "was", "wasn't", "we", "were",
		"weren't", "what", "when", "where", "which", "while", "who",
		"whom", "why", "will", "with", "won't", "would", "wouldn't",
		"you", "your", "yours", "yourself", "yourselves",
	}),
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
