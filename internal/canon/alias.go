package canon

import (
	"strings"
	"time"

	"github.com/sixforms/osisbible/internal/cache"
	"github.com/sixforms/osisbible/internal/errs"
)

// resolveCache memoizes Resolve by the caller's original (unnormalized)
// input. Unlike the bounded LRU the OSIS ID parser uses for its fixed,
// reused working set, a long-lived process answering reference lookups for
// many distinct callers has no natural size bound on the strings it sees, so
// this uses whole-cache TTL expiry instead: 10 minutes after its most recent
// insertion the cache goes cold, and Resolve empties it before the next
// insertion so it rebuilds from scratch, without needing an eviction policy.
var resolveCache = cache.New[string, Book](10 * time.Minute)

// aliases maps lowercase, punctuation-free book name variants (full names,
// common abbreviations, and numbered-book spellings like "1st samuel") to
// their canonical OSIS abbreviation. Modeled on the alias table human
// reference parsers in this space carry for exactly this purpose.
var aliases = map[string]string{
	"gen": "Gen", "genesis": "Gen",
	"exod": "Exod", "ex": "Exod", "exodus": "Exod",
	"lev": "Lev", "leviticus": "Lev",
	"num": "Num", "numbers": "Num",
	"deut": "Deut", "deuteronomy": "Deut",
	"josh": "Josh", "joshua": "Josh",
	"judg": "Judg", "judges": "Judg",
	"ruth": "Ruth",
	"1sam": "1Sam", "1samuel": "1Sam", "1st samuel": "1Sam", "i samuel": "1Sam",
	"2sam": "2Sam", "2samuel": "2Sam", "2nd samuel": "2Sam", "ii samuel": "2Sam",
	"1kgs": "1Kgs", "1kings": "1Kgs", "1st kings": "1Kgs", "i kings": "1Kgs",
	"2kgs": "2Kgs", "2kings": "2Kgs", "2nd kings": "2Kgs", "ii kings": "2Kgs",
	"1chr": "1Chr", "1chronicles": "1Chr", "1st chronicles": "1Chr", "i chronicles": "1Chr",
	"2chr": "2Chr", "2chronicles": "2Chr", "2nd chronicles": "2Chr", "ii chronicles": "2Chr",
	"ezra": "Ezra",
	"neh": "Neh", "nehemiah": "Neh",
	"esth": "Esth", "esther": "Esth",
	"job": "Job",
	"ps": "Ps", "psalm": "Ps", "psalms": "Ps", "pss": "Ps",
	"prov": "Prov", "proverbs": "Prov",
	"eccl": "Eccl", "ecclesiastes": "Eccl",
	"song": "Song", "songofsolomon": "Song", "song of solomon": "Song", "canticles": "Song",
	"isa": "Isa", "isaiah": "Isa",
	"jer": "Jer", "jeremiah": "Jer",
	"lam": "Lam", "lamentations": "Lam",
	"ezek": "Ezek", "ezekiel": "Ezek",
	"dan": "Dan", "daniel": "Dan",
	"hos": "Hos", "hosea": "Hos",
	"joel": "Joel",
	"amos": "Amos",
	"obad": "Obad", "obadiah": "Obad",
	"jonah": "Jonah",
	"mic": "Mic", "micah": "Mic",
	"nah": "Nah", "nahum": "Nah",
	"hab": "Hab", "habakkuk": "Hab",
	"zeph": "Zeph", "zephaniah": "Zeph",
	"hag": "Hag", "haggai": "Hag",
	"zech": "Zech", "zechariah": "Zech",
	"mal": "Mal", "malachi": "Mal",
	"matt": "Matt", "matthew": "Matt",
	"mark": "Mark",
	"luke": "Luke",
	"john": "John",
	"acts": "Acts",
	"rom": "Rom", "romans": "Rom",
	"1cor": "1Cor", "1corinthians": "1Cor", "1st corinthians": "1Cor", "i corinthians": "1Cor",
	"2cor": "2Cor", "2corinthians": "2Cor", "2nd corinthians": "2Cor", "ii corinthians": "2Cor",
	"gal": "Gal", "galatians": "Gal",
	"eph": "Eph", "ephesians": "Eph",
	"phil": "Phil", "philippians": "Phil",
	"col": "Col", "colossians": "Col",
	"1thess": "1Thess", "1thessalonians": "1Thess", "1st thessalonians": "1Thess", "i thessalonians": "1Thess",
	"2thess": "2Thess", "2thessalonians": "2Thess", "2nd thessalonians": "2Thess", "ii thessalonians": "2Thess",
	"1tim": "1Tim", "1timothy": "1Tim", "1st timothy": "1Tim", "i timothy": "1Tim",
	"2tim": "2Tim", "2timothy": "2Tim", "2nd timothy": "2Tim", "ii timothy": "2Tim",
	"titus": "Titus",
	"phlm": "Phlm", "philemon": "Phlm",
	"heb": "Heb", "hebrews": "Heb",
	"jas": "Jas", "james": "Jas",
	"1pet": "1Pet", "1peter": "1Pet", "1st peter": "1Pet", "i peter": "1Pet",
	"2pet": "2Pet", "2peter": "2Pet", "2nd peter": "2Pet", "ii peter": "2Pet",
	"1john": "1John", "1stjohn": "1John", "1st john": "1John", "i john": "1John",
	"2john": "2John", "2ndjohn": "2John", "2nd john": "2John", "ii john": "2John",
	"3john": "3John", "3rdjohn": "3John", "3rd john": "3John", "iii john": "3John",
	"jude": "Jude",
	"rev": "Rev", "revelation": "Rev", "revelations": "Rev", "apocalypse": "Rev",
}

// Resolve maps any recognized book name or abbreviation spelling to its
// canonical Book. Matching is case-insensitive and tolerant of a trailing
// period (e.g. "Gen." or "Matt.").
func Resolve(name string) (Book, error) {
	if b, ok := resolveCache.Get(name); ok {
		return b, nil
	}

	b, err := resolve(name)
	if err != nil {
		return Book{}, err
	}
	if resolveCache.IsExpired() {
		resolveCache.Invalidate()
	}
	resolveCache.Set(name, b)
	return b, nil
}

func resolve(name string) (Book, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, ".")
	if osisID, ok := aliases[key]; ok {
		return ByOSIS(osisID)
	}
	// "1 Cor" / "2 Sam" style: collapse the space between a leading book
	// number and the rest of the name before falling back.
	if collapsed := strings.ReplaceAll(key, " ", ""); collapsed != key {
		if osisID, ok := aliases[collapsed]; ok {
			return ByOSIS(osisID)
		}
	}
	if b, err := ByOSIS(name); err == nil {
		return b, nil
	}
	return Book{}, errs.NewBook(name)
}
