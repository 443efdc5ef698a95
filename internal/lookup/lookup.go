// Package lookup holds the reference tables used when repairing register
// records and building geocoding addresses. All tables are built once at
// init and treated as read-only afterwards.
package lookup

import (
	"github.com/surf-hydro/georeferencing-ICOLD-dams-and-reservoirs/internal/normalize"
)

// CountryISO maps an accent-stripped lowercase country name to its
// ISO 3166-1 alpha-2 code.
var CountryISO = buildCountryISO()

// USStateISO maps a lowercase US state name to its postal abbreviation.
// Used only when assembling geocoder addresses, never for matching.
var USStateISO = buildUSStateISO()

// KoreaProvince maps the province names used by the world register for
// the two Koreas to the forms the geocoder returns.
var KoreaProvince = buildKoreaProvince()

// ISOForCountry resolves a country name to its ISO code. The name is
// cleaned and accent-stripped before lookup. Returns "" when unknown.
func ISOForCountry(name string) string {
	return CountryISO[normalize.StripAccents(normalize.Clean(name))]
}

// IsCountryName reports whether the given value names a country. Used to
// invalidate state fields that repeat the country.
func IsCountryName(value string) bool {
	_, ok := CountryISO[normalize.StripAccents(normalize.Clean(value))]
	return ok
}

func buildCountryISO() map[string]string {
	rows := []struct{ name, iso string }{
		{"afghanistan", "af"}, {"albania", "al"}, {"algeria", "dz"},
		{"angola", "ao"}, {"argentina", "ar"}, {"armenia", "am"},
		{"australia", "au"}, {"austria", "at"}, {"azerbaijan", "az"},
		{"bangladesh", "bd"}, {"belarus", "by"}, {"belgium", "be"},
		{"belize", "bz"}, {"benin", "bj"}, {"bhutan", "bt"},
		{"bolivia", "bo"}, {"bosnia and herzegovina", "ba"},
		{"botswana", "bw"}, {"brazil", "br"}, {"bulgaria", "bg"},
		{"burkina faso", "bf"}, {"burundi", "bi"}, {"cambodia", "kh"},
		{"cameroon", "cm"}, {"canada", "ca"}, {"chad", "td"},
		{"chile", "cl"}, {"china", "cn"}, {"colombia", "co"},
		{"congo", "cg"}, {"costa rica", "cr"}, {"cote d'ivoire", "ci"},
		{"croatia", "hr"}, {"cuba", "cu"}, {"cyprus", "cy"},
		{"czech republic", "cz"}, {"denmark", "dk"},
		{"dominican republic", "do"}, {"ecuador", "ec"},
		{"egypt", "eg"}, {"el salvador", "sv"}, {"eritrea", "er"},
		{"estonia", "ee"}, {"ethiopia", "et"}, {"faroe islands", "fo"},
		{"fiji", "fj"}, {"finland", "fi"}, {"france", "fr"},
		{"gabon", "ga"}, {"georgia", "ge"}, {"germany", "de"},
		{"ghana", "gh"}, {"greece", "gr"}, {"greenland", "gl"},
		{"guadeloupe", "gp"}, {"guam", "gu"}, {"guatemala", "gt"},
		{"guernsey", "gg"}, {"guinea", "gn"}, {"guyana", "gy"},
		{"haiti", "ht"}, {"honduras", "hn"}, {"hong kong", "hk"},
		{"hungary", "hu"}, {"iceland", "is"}, {"india", "in"},
		{"indonesia", "id"}, {"iran", "ir"}, {"iraq", "iq"},
		{"ireland", "ie"}, {"isle of man", "im"}, {"israel", "il"},
		{"italy", "it"}, {"jamaica", "jm"}, {"japan", "jp"},
		{"jersey", "je"}, {"jordan", "jo"}, {"kazakhstan", "kz"},
		{"kenya", "ke"}, {"kosovo", "xk"}, {"kuwait", "kw"},
		{"kyrgyzstan", "kg"}, {"laos", "la"}, {"latvia", "lv"},
		{"lebanon", "lb"}, {"lesotho", "ls"}, {"liberia", "lr"},
		{"libya", "ly"}, {"lithuania", "lt"}, {"luxembourg", "lu"},
		{"macedonia", "mk"}, {"madagascar", "mg"}, {"malawi", "mw"},
		{"malaysia", "my"}, {"mali", "ml"}, {"malta", "mt"},
		{"martinique", "mq"}, {"mauritania", "mr"},
		{"mauritius", "mu"}, {"mayotte", "yt"}, {"mexico", "mx"},
		{"moldova", "md"}, {"mongolia", "mn"}, {"montenegro", "me"},
		{"morocco", "ma"}, {"mozambique", "mz"}, {"myanmar", "mm"},
		{"namibia", "na"}, {"nepal", "np"}, {"netherlands", "nl"},
		{"new zealand", "nz"}, {"nicaragua", "ni"}, {"niger", "ne"},
		{"nigeria", "ng"}, {"north korea", "kp"}, {"norway", "no"},
		{"oman", "om"}, {"pakistan", "pk"}, {"panama", "pa"},
		{"papua new guinea", "pg"}, {"paraguay", "py"}, {"peru", "pe"},
		{"philippines", "ph"}, {"poland", "pl"}, {"portugal", "pt"},
		{"puerto rico", "pr"}, {"qatar", "qa"}, {"reunion", "re"},
		{"romania", "ro"}, {"russia", "ru"}, {"rwanda", "rw"},
		{"saudi arabia", "sa"}, {"senegal", "sn"}, {"serbia", "rs"},
		{"sierra leone", "sl"}, {"singapore", "sg"},
		{"slovakia", "sk"}, {"slovenia", "si"}, {"somalia", "so"},
		{"south africa", "za"}, {"south korea", "kr"},
		{"south sudan", "ss"}, {"spain", "es"}, {"sri lanka", "lk"},
		{"sudan", "sd"}, {"suriname", "sr"}, {"swaziland", "sz"},
		{"sweden", "se"}, {"switzerland", "ch"}, {"syria", "sy"},
		{"taiwan", "tw"}, {"tajikistan", "tj"}, {"tanzania", "tz"},
		{"thailand", "th"}, {"togo", "tg"},
		{"trinidad and tobago", "tt"}, {"tunisia", "tn"},
		{"turkey", "tr"}, {"turkmenistan", "tm"}, {"uganda", "ug"},
		{"ukraine", "ua"}, {"united arab emirates", "ae"},
		{"united kingdom", "gb"}, {"united states", "us"},
		{"uruguay", "uy"}, {"uzbekistan", "uz"}, {"venezuela", "ve"},
		{"vietnam", "vn"}, {"yemen", "ye"}, {"zambia", "zm"},
		{"zimbabwe", "zw"},
	}
	m := make(map[string]string, len(rows))
	for _, r := range rows {
		m[r.name] = r.iso
	}
	return m
}

func buildUSStateISO() map[string]string {
	rows := []struct{ name, iso string }{
		{"alabama", "al"}, {"alaska", "ak"}, {"arizona", "az"},
		{"arkansas", "ar"}, {"california", "ca"}, {"colorado", "co"},
		{"connecticut", "ct"}, {"delaware", "de"}, {"florida", "fl"},
		{"georgia", "ga"}, {"hawaii", "hi"}, {"idaho", "id"},
		{"illinois", "il"}, {"indiana", "in"}, {"iowa", "ia"},
		{"kansas", "ks"}, {"kentucky", "ky"}, {"louisiana", "la"},
		{"maine", "me"}, {"maryland", "md"}, {"massachusetts", "ma"},
		{"michigan", "mi"}, {"minnesota", "mn"}, {"mississippi", "ms"},
		{"missouri", "mo"}, {"montana", "mt"}, {"nebraska", "ne"},
		{"nevada", "nv"}, {"new hampshire", "nh"},
		{"new jersey", "nj"}, {"new mexico", "nm"},
		{"new york", "ny"}, {"north carolina", "nc"},
		{"north dakota", "nd"}, {"ohio", "oh"}, {"oklahoma", "ok"},
		{"oregon", "or"}, {"pennsylvania", "pa"},
		{"rhode island", "ri"}, {"south carolina", "sc"},
		{"south dakota", "sd"}, {"tennessee", "tn"}, {"texas", "tx"},
		{"utah", "ut"}, {"vermont", "vt"}, {"virginia", "va"},
		{"washington", "wa"}, {"west virginia", "wv"},
		{"wisconsin", "wi"}, {"wyoming", "wy"},
	}
	m := make(map[string]string, len(rows))
	for _, r := range rows {
		m[r.name] = r.iso
	}
	return m
}

func buildKoreaProvince() map[string]string {
	rows := []struct{ icold, google string }{
		{"chungcheongbuk-do", "chungcheongbuk-do"},
		{"chungcheongnam-do", "chungcheongnam-do"},
		{"gangwon-do", "gangwon-do"},
		{"gyeonggi-do", "gyeonggi-do"},
		{"gyeongsangbuk-do", "gyeongsangbuk-do"},
		{"gyeongsangnam-do", "gyeongsangnam-do"},
		{"jeollabuk-do", "jeollabuk-do"},
		{"jeollanam-do", "jeollanam-do"},
		{"jeju-do", "jeju-do"},
		{"chung buk", "chungcheongbuk-do"},
		{"chung nam", "chungcheongnam-do"},
		{"kang won", "gangwon-do"},
		{"kyong gi", "gyeonggi-do"},
		{"kyong buk", "gyeongsangbuk-do"},
		{"kyong nam", "gyeongsangnam-do"},
		{"chon buk", "jeollabuk-do"},
		{"chon nam", "jeollanam-do"},
		{"cheju", "jeju-do"},
		{"p'yongan-namdo", "south pyongan"},
		{"p'yongan-bukto", "north pyongan"},
		{"hamgyong-namdo", "south hamgyong"},
		{"hamgyong-bukto", "north hamgyong"},
		{"hwanghae-namdo", "south hwanghae"},
		{"hwanghae-bukto", "north hwanghae"},
		{"chagang-do", "chagang"},
		{"yanggang-do", "ryanggang"},
	}
	m := make(map[string]string, len(rows))
	for _, r := range rows {
		m[r.icold] = r.google
	}
	return m
}
