package languages

import "golang.org/x/text/language"

// registry is the built-in language table. It is constructed once and never
// mutated; overlays are layered on top by Resolve.
//
// BCP 47 codes follow the IANA language subtag registry:
// https://www.iana.org/assignments/language-subtag-registry/
var registry = map[string]Language{}

func register(code, name, bcp47, alphabet, symbols string) {
	registry[code] = New(code, name, language.Make(bcp47), alphabet, symbols)
}

func init() {
	register("cat", "Catalan", "ca",
		"abcdefghijlmnopqrstuvxyzàéèíïóòúüçkw",
		"-'0123456789")
	register("dan", "Danish", "da",
		"abcdefghijklmnopqrstuvwxyzæøå",
		"")
	register("deu", "German", "de",
		"abcdefghijklmnopqrstuvwxyzäéöüß",
		"-.'0123456789")
	register("ell", "Greek", "el",
		"αβγδεζηθικλμνξοπρσςτυφχψω",
		",")
	register("eng", "English", "en",
		"abcdefghijklmnopqrstuvwxyz",
		"-.'0123456789")
	register("epo", "Esperanto", "eo",
		"abcĉdefgĝhĥijĵklmnoprsŝtuŭvz",
		"-0123456789")
	register("fin", "Finnish", "fi",
		"abcdefghijklmnopqrstuvwxyzåäöšž",
		"")
	register("fra", "French", "fr",
		"abcdefghijklmnopqrstuvwxyzàâæçéèêëîïôœùûüÿ",
		"")
	register("hrv", "Croatian", "hr",
		"abcčćdđefghijklmnoprsštuvzž",
		"")
	register("ita", "Italian", "it",
		"abcdefghilmnopqrstuvzàèéìíîòóùú",
		"")
	register("lit", "Lithuanian", "lt",
		"aąbcčdeęėfghiįyjklmnoprsštuųūvzž",
		"")
	register("mkd", "Macedonian", "mk",
		"абвгдѓежзѕијклљмнњопрстќуфхцчџшѐѝč",
		"'")
	register("nld", "Dutch", "nl",
		"abcdefghijklmnopqrstuvwxyzĳäëïöüáéíóú",
		"")
	register("nob", "Norwegian Bokmål", "nb",
		"abcdefghijklmnopqrstuvwxyzæøå",
		"")
	register("pol", "Polish", "pl",
		"aąbcćdeęfghijklłmnńoópqrsśtuvwxyzźż",
		"")
	register("por", "Portuguese", "pt",
		"abcdefghijklmnopqrstuvwxyzáâãàçéêíóôõú",
		"")
	register("ron", "Romanian", "ro",
		"aăâbcdefghiîjklmnopqrsştţuvwxyz",
		"")
	register("rus", "Russian", "ru",
		"бвгджзклмнпрстфхцчшщаеёиоуыэюяйьъ",
		"")
	// Space included because abbreviations like "EE. UU." are tokenized as
	// one word.
	register("spa", "Spanish", "es",
		"abcdefghijklmnñopqrstuvwxyzáéíóúü",
		"-.'0123456789 ")
	register("swe", "Swedish", "sv",
		"abcdefghijklmnopqrstuvwxyzåäöáüè",
		"")
	register("tgl", "Tagalog", "tl",
		"abcdefghijklmnñopqrstuvwxyzáàâéèêëíìîóòôúùû'",
		"-.0123456789")
	register("tok", "toki pona", "tok",
		"aeijklmnopstuw",
		"")
	register("ukr", "Ukrainian", "uk",
		"абвгґдеєжзиіїйклмнопрстуфхцчшщьюя'",
		"")
}
