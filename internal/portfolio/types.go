package portfolio

// Owner is the client profile header.
type Owner struct {
	Name              string
	Age               int
	FilingStatus      string
	State             string
	AnnualIncome      float64
	TaxBracketFederal string // e.g. "24%"
	TaxBracketState   string // e.g. "9.3%"
}

// W2Income mirrors the boxes of a W-2 for the current tax year.
type W2Income struct {
	Year                       int
	Employer                   string
	EmployerEIN                string
	WagesBox1                  float64
	FederalWithheldBox2        float64
	SocialSecurityWagesBox3    float64
	SocialSecurityWithheldBox4 float64
	MedicareWagesBox5          float64
	MedicareWithheldBox6       float64
	StateWagesBox16            float64
	StateWithheldBox17         float64
	Retirement401kBox12D       float64
	HSABox12W                  float64
	DependentCareFSABox10      float64
	HealthInsuranceBox12DD     float64
}

// TotalWithheld sums the four withholding boxes.
func (w W2Income) TotalWithheld() float64 {
	return w.FederalWithheldBox2 + w.SocialSecurityWithheldBox4 + w.MedicareWithheldBox6 + w.StateWithheldBox17
}

// Debt is one outstanding obligation. PropertyValue is zero for unsecured
// debt.
type Debt struct {
	ID              string
	Type            string
	Icon            string
	Lender          string
	OriginalBalance float64
	CurrentBalance  float64
	InterestRate    float64 // decimal, e.g. 0.0625
	MonthlyPayment  float64
	Term            string
	OriginDate      string
	PropertyValue   float64
}

// Estate groups estate-planning documents and insurance coverage.
type Estate struct {
	Will              WillInfo
	RevocableTrust    TrustInfo
	PowerOfAttorney   POAInfo
	Beneficiaries     []Beneficiary
	LifeInsurance     LifeInsurance
	UmbrellaInsurance UmbrellaInsurance
	GuardianChild     string
}

type WillInfo struct {
	Status      string
	LastUpdated string
	Attorney    string
}

type TrustInfo struct {
	Status      string
	Name        string
	LastUpdated string
}

type POAInfo struct {
	Financial  string
	Healthcare string
}

type Beneficiary struct {
	Account    string
	Primary    string
	Contingent string
}

type LifeInsurance struct {
	Type             string
	Provider         string
	CoverageAmount   float64
	Premium          float64
	PremiumFrequency string
	Term             string // "20 years" or "Permanent"
	StartDate        string // "2022-01"
	Insured          string
}

type UmbrellaInsurance struct {
	Provider       string
	CoverageAmount float64
	AnnualPremium  float64
}

// Holding is one position inside an account.
type Holding struct {
	Ticker       string
	Name         string
	Shares       float64
	CostBasis    float64
	CurrentPrice float64
	AssetClass   string
}

// Account is one investment account with its raw holdings.
type Account struct {
	ID           string
	Name         string
	Type         string
	Icon         string
	Institution  string
	TaxTreatment string
	Beneficiary  string // optional, e.g. 529 beneficiary
	Holdings     []Holding
}

// Avatar is sidebar display data for a client.
type Avatar struct {
	Initials string
	Color    string
}

// Client is one complete simulated client dataset.
type Client struct {
	ClientID string
	Avatar   Avatar
	Owner    Owner
	W2       W2Income
	Debts    []Debt
	Estate   Estate
	Accounts []Account
}
