package paymentintent

// KlarnaPreferredLocale localizes the Klarna authorization page. Tokens are
// region-cased BCP 47 tags, not snake_case.
type KlarnaPreferredLocale string

const (
	KlarnaPreferredLocaleDaDK KlarnaPreferredLocale = "da-DK"
	KlarnaPreferredLocaleDeAT KlarnaPreferredLocale = "de-AT"
	KlarnaPreferredLocaleDeCH KlarnaPreferredLocale = "de-CH"
	KlarnaPreferredLocaleDeDE KlarnaPreferredLocale = "de-DE"
	KlarnaPreferredLocaleEnAT KlarnaPreferredLocale = "en-AT"
	KlarnaPreferredLocaleEnAU KlarnaPreferredLocale = "en-AU"
	KlarnaPreferredLocaleEnBE KlarnaPreferredLocale = "en-BE"
	KlarnaPreferredLocaleEnCA KlarnaPreferredLocale = "en-CA"
	KlarnaPreferredLocaleEnCH KlarnaPreferredLocale = "en-CH"
	KlarnaPreferredLocaleEnDE KlarnaPreferredLocale = "en-DE"
	KlarnaPreferredLocaleEnDK KlarnaPreferredLocale = "en-DK"
	KlarnaPreferredLocaleEnES KlarnaPreferredLocale = "en-ES"
	KlarnaPreferredLocaleEnFI KlarnaPreferredLocale = "en-FI"
	KlarnaPreferredLocaleEnFR KlarnaPreferredLocale = "en-FR"
	KlarnaPreferredLocaleEnGB KlarnaPreferredLocale = "en-GB"
	KlarnaPreferredLocaleEnIE KlarnaPreferredLocale = "en-IE"
	KlarnaPreferredLocaleEnIT KlarnaPreferredLocale = "en-IT"
	KlarnaPreferredLocaleEnNL KlarnaPreferredLocale = "en-NL"
	KlarnaPreferredLocaleEnNO KlarnaPreferredLocale = "en-NO"
	KlarnaPreferredLocaleEnNZ KlarnaPreferredLocale = "en-NZ"
	KlarnaPreferredLocaleEnPL KlarnaPreferredLocale = "en-PL"
	KlarnaPreferredLocaleEnPT KlarnaPreferredLocale = "en-PT"
	KlarnaPreferredLocaleEnSE KlarnaPreferredLocale = "en-SE"
	KlarnaPreferredLocaleEnUS KlarnaPreferredLocale = "en-US"
	KlarnaPreferredLocaleEsES KlarnaPreferredLocale = "es-ES"
	KlarnaPreferredLocaleEsUS KlarnaPreferredLocale = "es-US"
	KlarnaPreferredLocaleFiFI KlarnaPreferredLocale = "fi-FI"
	KlarnaPreferredLocaleFrBE KlarnaPreferredLocale = "fr-BE"
	KlarnaPreferredLocaleFrCA KlarnaPreferredLocale = "fr-CA"
	KlarnaPreferredLocaleFrCH KlarnaPreferredLocale = "fr-CH"
	KlarnaPreferredLocaleFrFR KlarnaPreferredLocale = "fr-FR"
	KlarnaPreferredLocaleItCH KlarnaPreferredLocale = "it-CH"
	KlarnaPreferredLocaleItIT KlarnaPreferredLocale = "it-IT"
	KlarnaPreferredLocaleNbNO KlarnaPreferredLocale = "nb-NO"
	KlarnaPreferredLocaleNlBE KlarnaPreferredLocale = "nl-BE"
	KlarnaPreferredLocaleNlNL KlarnaPreferredLocale = "nl-NL"
	KlarnaPreferredLocalePlPL KlarnaPreferredLocale = "pl-PL"
	KlarnaPreferredLocalePtPT KlarnaPreferredLocale = "pt-PT"
	KlarnaPreferredLocaleSvFI KlarnaPreferredLocale = "sv-FI"
	KlarnaPreferredLocaleSvSE KlarnaPreferredLocale = "sv-SE"
)

var klarnaPreferredLocales = []KlarnaPreferredLocale{
	KlarnaPreferredLocaleDaDK, KlarnaPreferredLocaleDeAT, KlarnaPreferredLocaleDeCH,
	KlarnaPreferredLocaleDeDE, KlarnaPreferredLocaleEnAT, KlarnaPreferredLocaleEnAU,
	KlarnaPreferredLocaleEnBE, KlarnaPreferredLocaleEnCA, KlarnaPreferredLocaleEnCH,
	KlarnaPreferredLocaleEnDE, KlarnaPreferredLocaleEnDK, KlarnaPreferredLocaleEnES,
	KlarnaPreferredLocaleEnFI, KlarnaPreferredLocaleEnFR, KlarnaPreferredLocaleEnGB,
	KlarnaPreferredLocaleEnIE, KlarnaPreferredLocaleEnIT, KlarnaPreferredLocaleEnNL,
	KlarnaPreferredLocaleEnNO, KlarnaPreferredLocaleEnNZ, KlarnaPreferredLocaleEnPL,
	KlarnaPreferredLocaleEnPT, KlarnaPreferredLocaleEnSE, KlarnaPreferredLocaleEnUS,
	KlarnaPreferredLocaleEsES, KlarnaPreferredLocaleEsUS, KlarnaPreferredLocaleFiFI,
	KlarnaPreferredLocaleFrBE, KlarnaPreferredLocaleFrCA, KlarnaPreferredLocaleFrCH,
	KlarnaPreferredLocaleFrFR, KlarnaPreferredLocaleItCH, KlarnaPreferredLocaleItIT,
	KlarnaPreferredLocaleNbNO, KlarnaPreferredLocaleNlBE, KlarnaPreferredLocaleNlNL,
	KlarnaPreferredLocalePlPL, KlarnaPreferredLocalePtPT, KlarnaPreferredLocaleSvFI,
	KlarnaPreferredLocaleSvSE,
}

func (v KlarnaPreferredLocale) String() string { return string(v) }

// ParseKlarnaPreferredLocale resolves a Klarna preferred locale wire token.
func ParseKlarnaPreferredLocale(raw string) (KlarnaPreferredLocale, error) {
	return parseToken("klarna preferred locale", klarnaPreferredLocales, raw)
}

// BancontactPreferredLanguage localizes the Bancontact authorization page.
type BancontactPreferredLanguage string

const (
	BancontactPreferredLanguageDe BancontactPreferredLanguage = "de"
	BancontactPreferredLanguageEn BancontactPreferredLanguage = "en"
	BancontactPreferredLanguageFr BancontactPreferredLanguage = "fr"
	BancontactPreferredLanguageNl BancontactPreferredLanguage = "nl"
)

var bancontactPreferredLanguages = []BancontactPreferredLanguage{
	BancontactPreferredLanguageDe, BancontactPreferredLanguageEn,
	BancontactPreferredLanguageFr, BancontactPreferredLanguageNl,
}

func (v BancontactPreferredLanguage) String() string { return string(v) }

// ParseBancontactPreferredLanguage resolves a Bancontact language wire token.
func ParseBancontactPreferredLanguage(raw string) (BancontactPreferredLanguage, error) {
	return parseToken("bancontact preferred language", bancontactPreferredLanguages, raw)
}

// SofortPreferredLanguage localizes the Sofort authorization page.
type SofortPreferredLanguage string

const (
	SofortPreferredLanguageDe SofortPreferredLanguage = "de"
	SofortPreferredLanguageEn SofortPreferredLanguage = "en"
	SofortPreferredLanguageEs SofortPreferredLanguage = "es"
	SofortPreferredLanguageFr SofortPreferredLanguage = "fr"
	SofortPreferredLanguageIt SofortPreferredLanguage = "it"
	SofortPreferredLanguageNl SofortPreferredLanguage = "nl"
	SofortPreferredLanguagePl SofortPreferredLanguage = "pl"
)

var sofortPreferredLanguages = []SofortPreferredLanguage{
	SofortPreferredLanguageDe, SofortPreferredLanguageEn, SofortPreferredLanguageEs,
	SofortPreferredLanguageFr, SofortPreferredLanguageIt, SofortPreferredLanguageNl,
	SofortPreferredLanguagePl,
}

func (v SofortPreferredLanguage) String() string { return string(v) }

// ParseSofortPreferredLanguage resolves a Sofort language wire token.
func ParseSofortPreferredLanguage(raw string) (SofortPreferredLanguage, error) {
	return parseToken("sofort preferred language", sofortPreferredLanguages, raw)
}

// SofortCountry is the customer's bank country, upper-cased ISO 3166-1.
type SofortCountry string

const (
	SofortCountryAT SofortCountry = "AT"
	SofortCountryBE SofortCountry = "BE"
	SofortCountryDE SofortCountry = "DE"
	SofortCountryES SofortCountry = "ES"
	SofortCountryIT SofortCountry = "IT"
	SofortCountryNL SofortCountry = "NL"
)

var sofortCountries = []SofortCountry{
	SofortCountryAT, SofortCountryBE, SofortCountryDE,
	SofortCountryES, SofortCountryIT, SofortCountryNL,
}

func (v SofortCountry) String() string { return string(v) }

// ParseSofortCountry resolves a Sofort country wire token.
func ParseSofortCountry(raw string) (SofortCountry, error) {
	return parseToken("sofort country", sofortCountries, raw)
}
