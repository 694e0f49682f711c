// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package schemes

import "cardscope/card"

var (
	egyptName  = card.T("Egypt", "مصر")
	regionMENA = card.T("Middle East & North Africa", "الشرق الأوسط وشمال أفريقيا")
)

// egIssuer builds an Egyptian issuer record. Meeza entries are flagged
// domestic; Amex entries carry the 4-digit CVV and 15-digit length.
func egIssuer(prefix string, network, cardType, category, name card.Text, tokenizable bool, website, phone string) IssuerRecord {
	lengths := []int{16}
	cvv := 3
	if network.EN == NetworkAmex.EN {
		lengths = []int{15}
		cvv = 4
	}
	return IssuerRecord{
		Prefix:      prefix,
		Network:     network,
		CardType:    cardType,
		Category:    category,
		IssuerName:  name,
		CountryCode: "EG",
		CountryName: egyptName,
		Currency:    "EGP",
		Region:      regionMENA,
		Domestic:    network.EN == NetworkMeeza.EN,
		Tokenizable: tokenizable,
		CVVLength:   cvv,
		Lengths:     lengths,
		Website:     website,
		Phone:       phone,
	}
}

// egyptIssuers is the built-in issuer list. Scanned in order, exact
// six-digit prefixes, no duplicates. Meeza BINs sit in the national
// 507803+ block; the remaining BINs are the banks' international
// scheme programs.
var egyptIssuers = []IssuerRecord{
	// National Bank of Egypt
	egIssuer("507803", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("National Bank of Egypt", "البنك الأهلي المصري"), true, "https://www.nbe.com.eg", "19623"),
	egIssuer("417867", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("National Bank of Egypt", "البنك الأهلي المصري"), true, "https://www.nbe.com.eg", "19623"),
	egIssuer("457556", NetworkVisa, TypeCredit, CategoryGold,
		card.T("National Bank of Egypt", "البنك الأهلي المصري"), true, "https://www.nbe.com.eg", "19623"),
	egIssuer("528700", NetworkMastercard, TypeCredit, CategoryPlatinum,
		card.T("National Bank of Egypt", "البنك الأهلي المصري"), true, "https://www.nbe.com.eg", "19623"),

	// Banque Misr
	egIssuer("507804", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("Banque Misr", "بنك مصر"), true, "https://www.banquemisr.com", "19888"),
	egIssuer("426380", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Banque Misr", "بنك مصر"), true, "https://www.banquemisr.com", "19888"),
	egIssuer("529117", NetworkMastercard, TypeCredit, CategoryWorld,
		card.T("Banque Misr", "بنك مصر"), true, "https://www.banquemisr.com", "19888"),

	// Banque du Caire
	egIssuer("507805", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("Banque du Caire", "بنك القاهرة"), true, "https://www.bdc.com.eg", "16990"),
	egIssuer("434398", NetworkVisa, TypeCredit, CategoryClassic,
		card.T("Banque du Caire", "بنك القاهرة"), true, "https://www.bdc.com.eg", "16990"),

	// Commercial International Bank
	egIssuer("507806", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("Commercial International Bank", "البنك التجاري الدولي"), true, "https://www.cibeg.com", "19666"),
	egIssuer("428568", NetworkVisa, TypeCredit, CategoryGold,
		card.T("Commercial International Bank", "البنك التجاري الدولي"), true, "https://www.cibeg.com", "19666"),
	egIssuer("431380", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Commercial International Bank", "البنك التجاري الدولي"), true, "https://www.cibeg.com", "19666"),
	egIssuer("524726", NetworkMastercard, TypeCredit, CategoryPlatinum,
		card.T("Commercial International Bank", "البنك التجاري الدولي"), true, "https://www.cibeg.com", "19666"),

	// QNB Alahli
	egIssuer("507807", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("QNB Alahli", "بنك قطر الوطني الأهلي"), true, "https://www.qnbalahli.com", "19700"),
	egIssuer("450476", NetworkVisa, TypeCredit, CategoryGold,
		card.T("QNB Alahli", "بنك قطر الوطني الأهلي"), true, "https://www.qnbalahli.com", "19700"),
	egIssuer("542030", NetworkMastercard, TypeDebit, CategoryTitanium,
		card.T("QNB Alahli", "بنك قطر الوطني الأهلي"), true, "https://www.qnbalahli.com", "19700"),

	// Egypt Post
	egIssuer("507808", NetworkMeeza, TypePrepaid, CategoryStandard,
		card.T("Egypt Post", "البريد المصري"), false, "https://www.egyptpost.gov.eg", "16789"),

	// Housing and Development Bank
	egIssuer("507809", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("Housing and Development Bank", "بنك التعمير والإسكان"), true, "https://www.hdb-egy.com", "19992"),
	egIssuer("418133", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Housing and Development Bank", "بنك التعمير والإسكان"), true, "https://www.hdb-egy.com", "19992"),

	// Arab African International Bank
	egIssuer("507810", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("Arab African International Bank", "البنك العربي الأفريقي الدولي"), true, "https://www.aaib.com", "19555"),
	egIssuer("409503", NetworkVisa, TypeCredit, CategoryPlatinum,
		card.T("Arab African International Bank", "البنك العربي الأفريقي الدولي"), true, "https://www.aaib.com", "19555"),

	// Bank of Alexandria
	egIssuer("507811", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("Bank of Alexandria", "بنك الإسكندرية"), true, "https://www.alexbank.com", "19033"),
	egIssuer("407660", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Bank of Alexandria", "بنك الإسكندرية"), true, "https://www.alexbank.com", "19033"),
	egIssuer("519412", NetworkMastercard, TypeCredit, CategoryGold,
		card.T("Bank of Alexandria", "بنك الإسكندرية"), true, "https://www.alexbank.com", "19033"),

	// HSBC Bank Egypt
	egIssuer("421856", NetworkVisa, TypeCredit, CategoryPlatinum,
		card.T("HSBC Bank Egypt", "بنك إتش إس بي سي مصر"), true, "https://www.hsbc.com.eg", "19007"),
	egIssuer("545059", NetworkMastercard, TypeDebit, CategoryClassic,
		card.T("HSBC Bank Egypt", "بنك إتش إس بي سي مصر"), true, "https://www.hsbc.com.eg", "19007"),

	// Credit Agricole Egypt
	egIssuer("441358", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Credit Agricole Egypt", "بنك كريدي أجريكول مصر"), true, "https://www.ca-egypt.com", "19191"),
	egIssuer("552033", NetworkMastercard, TypeCredit, CategoryGold,
		card.T("Credit Agricole Egypt", "بنك كريدي أجريكول مصر"), true, "https://www.ca-egypt.com", "19191"),

	// Faisal Islamic Bank of Egypt
	egIssuer("507812", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("Faisal Islamic Bank of Egypt", "بنك فيصل الإسلامي المصري"), false, "https://www.faisalbank.com.eg", "19851"),
	egIssuer("404838", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Faisal Islamic Bank of Egypt", "بنك فيصل الإسلامي المصري"), false, "https://www.faisalbank.com.eg", "19851"),

	// Abu Dhabi Islamic Bank Egypt
	egIssuer("507813", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("Abu Dhabi Islamic Bank Egypt", "مصرف أبوظبي الإسلامي مصر"), true, "https://www.adib.eg", "19951"),
	egIssuer("458062", NetworkVisa, TypeCredit, CategoryGold,
		card.T("Abu Dhabi Islamic Bank Egypt", "مصرف أبوظبي الإسلامي مصر"), true, "https://www.adib.eg", "19951"),

	// Al Baraka Bank Egypt
	egIssuer("428335", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Al Baraka Bank Egypt", "بنك البركة مصر"), false, "https://www.albaraka-bank.com.eg", "19373"),

	// The United Bank
	egIssuer("507814", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("The United Bank", "المصرف المتحد"), false, "https://www.theubeg.com", "19060"),

	// Suez Canal Bank
	egIssuer("417454", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Suez Canal Bank", "بنك قناة السويس"), false, "https://www.scbank.com.eg", "19093"),

	// Egyptian Gulf Bank
	egIssuer("468811", NetworkVisa, TypeCredit, CategoryGold,
		card.T("Egyptian Gulf Bank", "البنك المصري الخليجي"), true, "https://www.eg-bank.com", "16320"),

	// Export Development Bank of Egypt
	egIssuer("407465", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Export Development Bank of Egypt", "البنك المصري لتنمية الصادرات"), false, "https://www.ebank.com.eg", "16648"),

	// National Bank of Kuwait Egypt
	egIssuer("530631", NetworkMastercard, TypeCredit, CategoryGold,
		card.T("National Bank of Kuwait Egypt", "بنك الكويت الوطني مصر"), true, "https://www.nbk.com", "19336"),

	// Attijariwafa Bank Egypt
	egIssuer("446043", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Attijariwafa Bank Egypt", "بنك التجاري وفا مصر"), false, "https://www.attijariwafabank.com.eg", "16110"),

	// Societe Arabe Internationale de Banque
	egIssuer("441945", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Societe Arabe Internationale de Banque", "بنك الشركة المصرفية العربية الدولية"), false, "https://www.saib.com.eg", "19783"),

	// Agricultural Bank of Egypt
	egIssuer("507815", NetworkMeeza, TypeDebit, CategoryStandard,
		card.T("Agricultural Bank of Egypt", "البنك الزراعي المصري"), false, "https://www.abe.com.eg", "19877"),

	// Emirates NBD Egypt
	egIssuer("455036", NetworkVisa, TypeCredit, CategoryPlatinum,
		card.T("Emirates NBD Egypt", "بنك الإمارات دبي الوطني مصر"), true, "https://www.emiratesnbd.com.eg", "16664"),

	// First Abu Dhabi Bank Misr
	egIssuer("403571", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("First Abu Dhabi Bank Misr", "بنك أبوظبي الأول مصر"), true, "https://www.bankfab.com/eg", "19977"),

	// Arab Bank Egypt
	egIssuer("512945", NetworkMastercard, TypeCredit, CategoryGold,
		card.T("Arab Bank Egypt", "البنك العربي مصر"), true, "https://www.arabbank.com.eg", "19100"),

	// Mashreq Bank Egypt
	egIssuer("539135", NetworkMastercard, TypeCredit, CategoryPlatinum,
		card.T("Mashreq Bank Egypt", "بنك المشرق مصر"), true, "https://www.mashreqbank.com.eg", "19677"),

	// Ahli United Bank Egypt
	egIssuer("423435", NetworkVisa, TypeDebit, CategoryClassic,
		card.T("Ahli United Bank Egypt", "البنك الأهلي المتحد مصر"), false, "https://www.ahliunited.com.eg", "19072"),

	// Amex programs issued through the Egyptian franchise.
	egIssuer("374622", NetworkAmex, TypeCredit, CategoryGold,
		card.T("American Express Egypt", "أمريكان إكسبريس مصر"), true, "https://www.americanexpress.com.eg", "19327"),
	egIssuer("377169", NetworkAmex, TypeCredit, CategoryPlatinum,
		card.T("American Express Egypt", "أمريكان إكسبريس مصر"), true, "https://www.americanexpress.com.eg", "19327"),
}
