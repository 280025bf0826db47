package paymentintent

// EPSBank is an Austrian bank reachable over the EPS scheme.
type EPSBank string

const (
	EPSBankArzteUndApothekerBank                EPSBank = "arzte_und_apotheker_bank"
	EPSBankAustrianAnadiBankAG                  EPSBank = "austrian_anadi_bank_ag"
	EPSBankBankAustria                          EPSBank = "bank_austria"
	EPSBankBankhausCarlSpangler                 EPSBank = "bankhaus_carl_spangler"
	EPSBankBankhausSchelhammerUndSchatteraAG    EPSBank = "bankhaus_schelhammer_und_schattera_ag"
	EPSBankBawagPskAG                           EPSBank = "bawag_psk_ag"
	EPSBankBksBankAG                            EPSBank = "bks_bank_ag"
	EPSBankBrullKallmusBankAG                   EPSBank = "brull_kallmus_bank_ag"
	EPSBankBtvVierLanderBank                    EPSBank = "btv_vier_lander_bank"
	EPSBankCapitalBankGraweGruppeAG             EPSBank = "capital_bank_grawe_gruppe_ag"
	EPSBankDeutscheBankAG                       EPSBank = "deutsche_bank_ag"
	EPSBankDolomitenbank                        EPSBank = "dolomitenbank"
	EPSBankEasybankAG                           EPSBank = "easybank_ag"
	EPSBankErsteBankUndSparkassen               EPSBank = "erste_bank_und_sparkassen"
	EPSBankHypoAlpeadriabankInternationalAG     EPSBank = "hypo_alpeadriabank_international_ag"
	EPSBankHypoBankBurgenlandAktiengesellschaft EPSBank = "hypo_bank_burgenland_aktiengesellschaft"
	EPSBankHypoNoeLbFurNiederosterreichUWien    EPSBank = "hypo_noe_lb_fur_niederosterreich_u_wien"
	EPSBankHypoOberosterreichSalzburgSteiermark EPSBank = "hypo_oberosterreich_salzburg_steiermark"
	EPSBankHypoTirolBankAG                      EPSBank = "hypo_tirol_bank_ag"
	EPSBankHypoVorarlbergBankAG                 EPSBank = "hypo_vorarlberg_bank_ag"
	EPSBankMarchfelderBank                      EPSBank = "marchfelder_bank"
	EPSBankOberbankAG                           EPSBank = "oberbank_ag"
	EPSBankRaiffeisenBankengruppeOsterreich     EPSBank = "raiffeisen_bankengruppe_osterreich"
	EPSBankSchoellerbankAG                      EPSBank = "schoellerbank_ag"
	EPSBankSpardaBankWien                       EPSBank = "sparda_bank_wien"
	EPSBankVolksbankGruppe                      EPSBank = "volksbank_gruppe"
	EPSBankVolkskreditbankAG                    EPSBank = "volkskreditbank_ag"
	EPSBankVrBankBraunau                        EPSBank = "vr_bank_braunau"
)

var epsBanks = []EPSBank{
	EPSBankArzteUndApothekerBank, EPSBankAustrianAnadiBankAG, EPSBankBankAustria,
	EPSBankBankhausCarlSpangler, EPSBankBankhausSchelhammerUndSchatteraAG, EPSBankBawagPskAG,
	EPSBankBksBankAG, EPSBankBrullKallmusBankAG, EPSBankBtvVierLanderBank,
	EPSBankCapitalBankGraweGruppeAG, EPSBankDeutscheBankAG, EPSBankDolomitenbank,
	EPSBankEasybankAG, EPSBankErsteBankUndSparkassen, EPSBankHypoAlpeadriabankInternationalAG,
	EPSBankHypoBankBurgenlandAktiengesellschaft, EPSBankHypoNoeLbFurNiederosterreichUWien,
	EPSBankHypoOberosterreichSalzburgSteiermark, EPSBankHypoTirolBankAG, EPSBankHypoVorarlbergBankAG,
	EPSBankMarchfelderBank, EPSBankOberbankAG, EPSBankRaiffeisenBankengruppeOsterreich,
	EPSBankSchoellerbankAG, EPSBankSpardaBankWien, EPSBankVolksbankGruppe,
	EPSBankVolkskreditbankAG, EPSBankVrBankBraunau,
}

func (v EPSBank) String() string { return string(v) }

// ParseEPSBank resolves an EPS bank wire token.
func ParseEPSBank(raw string) (EPSBank, error) {
	return parseToken("eps bank", epsBanks, raw)
}

// FPXBank is a Malaysian bank reachable over the FPX scheme.
type FPXBank string

const (
	FPXBankAffinBank         FPXBank = "affin_bank"
	FPXBankAgrobank          FPXBank = "agrobank"
	FPXBankAllianceBank      FPXBank = "alliance_bank"
	FPXBankAmbank            FPXBank = "ambank"
	FPXBankBankIslam         FPXBank = "bank_islam"
	FPXBankBankMuamalat      FPXBank = "bank_muamalat"
	FPXBankBankOfChina       FPXBank = "bank_of_china"
	FPXBankBankRakyat        FPXBank = "bank_rakyat"
	FPXBankBsn               FPXBank = "bsn"
	FPXBankCimb              FPXBank = "cimb"
	FPXBankDeutscheBank      FPXBank = "deutsche_bank"
	FPXBankHongLeongBank     FPXBank = "hong_leong_bank"
	FPXBankHsbc              FPXBank = "hsbc"
	FPXBankKfh               FPXBank = "kfh"
	FPXBankMaybank2e         FPXBank = "maybank2e"
	FPXBankMaybank2u         FPXBank = "maybank2u"
	FPXBankOcbc              FPXBank = "ocbc"
	FPXBankPbEnterprise      FPXBank = "pb_enterprise"
	FPXBankPublicBank        FPXBank = "public_bank"
	FPXBankRhb               FPXBank = "rhb"
	FPXBankStandardChartered FPXBank = "standard_chartered"
	FPXBankUob               FPXBank = "uob"
)

var fpxBanks = []FPXBank{
	FPXBankAffinBank, FPXBankAgrobank, FPXBankAllianceBank, FPXBankAmbank,
	FPXBankBankIslam, FPXBankBankMuamalat, FPXBankBankOfChina, FPXBankBankRakyat,
	FPXBankBsn, FPXBankCimb, FPXBankDeutscheBank, FPXBankHongLeongBank,
	FPXBankHsbc, FPXBankKfh, FPXBankMaybank2e, FPXBankMaybank2u,
	FPXBankOcbc, FPXBankPbEnterprise, FPXBankPublicBank, FPXBankRhb,
	FPXBankStandardChartered, FPXBankUob,
}

func (v FPXBank) String() string { return string(v) }

// ParseFPXBank resolves an FPX bank wire token.
func ParseFPXBank(raw string) (FPXBank, error) {
	return parseToken("fpx bank", fpxBanks, raw)
}

// IdealBank is a Dutch bank reachable over the iDEAL scheme.
type IdealBank string

const (
	IdealBankAbnAmro       IdealBank = "abn_amro"
	IdealBankAsnBank       IdealBank = "asn_bank"
	IdealBankBunq          IdealBank = "bunq"
	IdealBankHandelsbanken IdealBank = "handelsbanken"
	IdealBankIng           IdealBank = "ing"
	IdealBankKnab          IdealBank = "knab"
	IdealBankMoneyou       IdealBank = "moneyou"
	IdealBankRabobank      IdealBank = "rabobank"
	IdealBankRegiobank     IdealBank = "regiobank"
	IdealBankRevolut       IdealBank = "revolut"
	IdealBankSnsBank       IdealBank = "sns_bank"
	IdealBankTriodosBank   IdealBank = "triodos_bank"
	IdealBankVanLanschot   IdealBank = "van_lanschot"
)

var idealBanks = []IdealBank{
	IdealBankAbnAmro, IdealBankAsnBank, IdealBankBunq, IdealBankHandelsbanken,
	IdealBankIng, IdealBankKnab, IdealBankMoneyou, IdealBankRabobank,
	IdealBankRegiobank, IdealBankRevolut, IdealBankSnsBank, IdealBankTriodosBank,
	IdealBankVanLanschot,
}

func (v IdealBank) String() string { return string(v) }

// ParseIdealBank resolves an iDEAL bank wire token.
func ParseIdealBank(raw string) (IdealBank, error) {
	return parseToken("ideal bank", idealBanks, raw)
}

// P24Bank is a Polish bank reachable over the Przelewy24 scheme.
type P24Bank string

const (
	P24BankAliorBank            P24Bank = "alior_bank"
	P24BankBankMillennium       P24Bank = "bank_millennium"
	P24BankBankNowyBfgSa        P24Bank = "bank_nowy_bfg_sa"
	P24BankBankPekaoSa          P24Bank = "bank_pekao_sa"
	P24BankBankiSpbdzielcze     P24Bank = "banki_spbdzielcze"
	P24BankBlik                 P24Bank = "blik"
	P24BankBnpParibas           P24Bank = "bnp_paribas"
	P24BankBoz                  P24Bank = "boz"
	P24BankCitiHandlowy         P24Bank = "citi_handlowy"
	P24BankCreditAgricole       P24Bank = "credit_agricole"
	P24BankEnvelobank           P24Bank = "envelobank"
	P24BankEtransferPocztowy24  P24Bank = "etransfer_pocztowy24"
	P24BankGetinBank            P24Bank = "getin_bank"
	P24BankIdeabank             P24Bank = "ideabank"
	P24BankIng                  P24Bank = "ing"
	P24BankInteligo             P24Bank = "inteligo"
	P24BankMbankMtransfer       P24Bank = "mbank_mtransfer"
	P24BankNestPrzelew          P24Bank = "nest_przelew"
	P24BankNoblePay             P24Bank = "noble_pay"
	P24BankPbacZIpko            P24Bank = "pbac_z_ipko"
	P24BankPlusBank             P24Bank = "plus_bank"
	P24BankSantanderPrzelew24   P24Bank = "santander_przelew24"
	P24BankTmobileUsbugiBankowe P24Bank = "tmobile_usbugi_bankowe"
	P24BankToyotaBank           P24Bank = "toyota_bank"
	P24BankVolkswagenBank       P24Bank = "volkswagen_bank"
)

var p24Banks = []P24Bank{
	P24BankAliorBank, P24BankBankMillennium, P24BankBankNowyBfgSa, P24BankBankPekaoSa,
	P24BankBankiSpbdzielcze, P24BankBlik, P24BankBnpParibas, P24BankBoz,
	P24BankCitiHandlowy, P24BankCreditAgricole, P24BankEnvelobank, P24BankEtransferPocztowy24,
	P24BankGetinBank, P24BankIdeabank, P24BankIng, P24BankInteligo,
	P24BankMbankMtransfer, P24BankNestPrzelew, P24BankNoblePay, P24BankPbacZIpko,
	P24BankPlusBank, P24BankSantanderPrzelew24, P24BankTmobileUsbugiBankowe, P24BankToyotaBank,
	P24BankVolkswagenBank,
}

func (v P24Bank) String() string { return string(v) }

// ParseP24Bank resolves a Przelewy24 bank wire token.
func ParseP24Bank(raw string) (P24Bank, error) {
	return parseToken("p24 bank", p24Banks, raw)
}
