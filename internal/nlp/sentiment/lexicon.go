package sentiment

// lexicon maps English words to valence on the [-4, 4] scale used by the
// VADER lexicon. This is the strongly-valenced core of that inventory;
// words outside it score zero and count toward the neutral proportion.
var lexicon = map[string]float64{
	// positive
	"good": 1.9, "great": 3.1, "greatest": 3.2, "love": 3.2, "loved": 2.9,
	"loves": 2.7, "lovely": 2.8, "like": 1.5, "liked": 1.8, "likes": 1.6,
	"excellent": 2.7, "happy": 2.7, "happiness": 2.8, "joy": 2.8,
	"joyful": 2.9, "awesome": 3.1, "nice": 1.8, "wonderful": 2.7,
	"amazing": 2.8, "best": 3.2, "better": 1.9, "beautiful": 2.9,
	"fantastic": 2.6, "glad": 2.0, "fun": 2.3, "funny": 1.9, "hope": 1.9,
	"hopeful": 2.0, "win": 2.8, "winner": 2.8, "won": 2.7, "thanks": 1.9,
	"thank": 1.7, "grateful": 2.3, "perfect": 2.7, "pleased": 2.0,
	"delighted": 2.9, "excited": 2.3, "exciting": 2.2, "brilliant": 2.8,
	"success": 2.7, "successful": 2.4, "smile": 2.1, "smiling": 2.3,
	"friend": 2.2, "friendly": 2.2, "kind": 2.4, "peace": 2.5,
	"peaceful": 2.4, "safe": 1.8, "enjoy": 2.2, "enjoyed": 2.3,
	"proud": 2.1, "strong": 2.3, "calm": 1.3, "comfort": 1.5,
	"comfortable": 1.8, "celebrate": 2.7, "congratulations": 2.9,
	"welcome": 2.0, "easy": 1.9, "free": 1.9, "interesting": 1.7,
	"positive": 2.5, "optimistic": 2.3, "relieved": 1.7,

	// negative
	"bad": -2.5, "terrible": -2.1, "terribly": -2.4, "awful": -2.0,
	"sad": -2.1, "sadness": -2.3, "hate": -2.7, "hated": -2.8,
	"hates": -1.9, "horrible": -2.5, "worst": -3.1, "worse": -2.1,
	"depressed": -2.3, "depressing": -1.9, "depression": -2.7,
	"die": -2.9, "died": -2.4, "death": -2.9, "dead": -3.3, "kill": -3.7,
	"pain": -2.3, "painful": -2.4, "alone": -1.0, "lonely": -1.5,
	"loneliness": -1.6, "miserable": -2.7, "misery": -2.7,
	"hopeless": -2.0, "hopelessness": -2.6, "cry": -2.1, "crying": -2.2,
	"fear": -2.2, "afraid": -2.0, "scared": -1.9, "angry": -2.3,
	"anger": -2.7, "lost": -1.3, "hurt": -2.4, "hurts": -2.0,
	"worthless": -2.7, "tired": -1.2, "anxious": -1.9, "anxiety": -2.0,
	"despair": -2.8, "suffering": -2.4, "suffer": -2.5, "broken": -2.0,
	"fail": -2.5, "failed": -2.3, "failure": -2.5, "wrong": -2.1,
	"problem": -1.7, "problems": -1.7, "trouble": -1.9, "crisis": -3.1,
	"disaster": -3.1, "stress": -1.9, "stressed": -1.8, "stressful": -2.1,
	"ugly": -2.6, "disgusting": -3.0, "annoying": -1.9, "annoyed": -1.8,
	"upset": -1.9, "unhappy": -1.9, "regret": -1.9, "sorry": -0.3,
	"sick": -2.1, "tragedy": -3.4, "tragic": -3.2, "empty": -1.1,
	"abandoned": -2.0, "helpless": -2.1, "desperate": -2.6,
	"negative": -2.5, "nightmare": -2.9, "grief": -2.7,
}
