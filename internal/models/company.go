package models

// CompanyProfile is the identity block printed on every document. The store
// may override it via /api/company/info; DefaultCompanyProfile is the
// fallback when no override is available.
type CompanyProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	GSTIN       string `json:"gstin"`
	Address     string `json:"address"`
	Branch      string `json:"branch"`
}

// BankDetails is static business configuration, never derived from a
// document.
type BankDetails struct {
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	Branch        string `json:"branch"`
	AccountType   string `json:"accountType"`
	BankName      string `json:"bankName"`
}

func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		Name:        "SRI RAJA MOSQUITO NETLON SERVICES",
		Description: "Manufacture & Dealer in Mosquito & Insect Net (WholeSale & Retail)",
		Phone:       "+91 9790569529",
		GSTIN:       "33BECPR927M1ZU",
		Address:     "Ryan Complex Vadavalli Road, Edayarpalayam, Coimbatore-25",
		Branch:      "Edayarpalayam",
	}
}

func DefaultBankDetails() BankDetails {
	return BankDetails{
		AccountHolder: "RAJASEKAR P",
		AccountNumber: "50100774198590",
		IFSC:          "HDFC0006806",
		Branch:        "EDAYARPALAYAM",
		AccountType:   "SAVING",
		BankName:      "HDFC BANK",
	}
}
