package portfolio

// DemoClients returns the simulated client datasets, in sidebar order.
// A fresh slice is returned so sessions cannot share mutable state.
func DemoClients() []Client {
	return []Client{jordanMitchell(), aishaPatel(), carlosReyes(), helenPark()}
}

func jordanMitchell() Client {
	return Client{
		ClientID: "jordan-mitchell",
		Avatar:   Avatar{Initials: "JM", Color: "#3b82f6"},
		Owner: Owner{
			Name:              "Jordan Mitchell",
			Age:               38,
			FilingStatus:      "Married Filing Jointly",
			State:             "California",
			AnnualIncome:      195000,
			TaxBracketFederal: "24%",
			TaxBracketState:   "9.3%",
		},
		W2: W2Income{
			Year:                       2026,
			Employer:                   "Apex Technologies, Inc.",
			EmployerEIN:                "94-3XXXXXX",
			WagesBox1:                  195000,
			FederalWithheldBox2:        35100,
			SocialSecurityWagesBox3:    168600,
			SocialSecurityWithheldBox4: 10453.20,
			MedicareWagesBox5:          195000,
			MedicareWithheldBox6:       2827.50,
			StateWagesBox16:            195000,
			StateWithheldBox17:         14820,
			Retirement401kBox12D:       23500,
			HSABox12W:                  8550,
			DependentCareFSABox10:      5000,
			HealthInsuranceBox12DD:     18600,
		},
		Debts: []Debt{
			{ID: "mortgage", Type: "Mortgage", Icon: "🏠", Lender: "Wells Fargo", OriginalBalance: 680000, CurrentBalance: 542000, InterestRate: 0.0625, MonthlyPayment: 4186, Term: "30-year fixed", OriginDate: "2021-03", PropertyValue: 985000},
			{ID: "auto-loan", Type: "Auto Loan", Icon: "🚗", Lender: "Fidelity Auto Finance", OriginalBalance: 38000, CurrentBalance: 14200, InterestRate: 0.049, MonthlyPayment: 720, Term: "60 months", OriginDate: "2023-06"},
			{ID: "student-loan", Type: "Student Loan", Icon: "🎓", Lender: "Federal Direct (MOHELA)", OriginalBalance: 62000, CurrentBalance: 18400, InterestRate: 0.045, MonthlyPayment: 485, Term: "10-year standard", OriginDate: "2014-09"},
		},
		Estate: Estate{
			Will:           WillInfo{Status: "Executed", LastUpdated: "2023-11", Attorney: "Martinez & Park LLP"},
			RevocableTrust: TrustInfo{Status: "Established", Name: "Mitchell Family Revocable Trust", LastUpdated: "2023-11"},
			PowerOfAttorney: POAInfo{
				Financial:  "Spouse — Casey Mitchell",
				Healthcare: "Spouse — Casey Mitchell",
			},
			Beneficiaries: []Beneficiary{
				{Account: "401(k)", Primary: "Casey Mitchell (spouse) — 100%", Contingent: "Child — 100%"},
				{Account: "Roth IRA", Primary: "Casey Mitchell (spouse) — 100%", Contingent: "Child — 100%"},
				{Account: "Life Insurance", Primary: "Casey Mitchell (spouse) — 100%", Contingent: "Mitchell Family Trust — 100%"},
				{Account: "HSA", Primary: "Casey Mitchell (spouse) — 100%", Contingent: "Child — 100%"},
			},
			LifeInsurance: LifeInsurance{
				Type: "Term", Provider: "Northwestern Mutual", CoverageAmount: 1000000,
				Premium: 85, PremiumFrequency: "monthly", Term: "20 years", StartDate: "2022-01",
				Insured: "Jordan Mitchell",
			},
			UmbrellaInsurance: UmbrellaInsurance{Provider: "State Farm", CoverageAmount: 1000000, AnnualPremium: 380},
			GuardianChild:     "Designated: Sarah Mitchell (sister) & spouse",
		},
		Accounts: []Account{
			{
				ID: "retirement-401k", Name: "401(k) Retirement", Type: "401k", Icon: "🏦",
				Institution: "Fidelity", TaxTreatment: "Tax-Deferred",
				Holdings: []Holding{
					{Ticker: "VTI", Name: "Vanguard Total Stock Market ETF", Shares: 380, CostBasis: 198.50, CurrentPrice: 268.42, AssetClass: "US Equity"},
					{Ticker: "VXUS", Name: "Vanguard Total Intl Stock ETF", Shares: 520, CostBasis: 52.30, CurrentPrice: 59.17, AssetClass: "Intl Equity"},
					{Ticker: "BND", Name: "Vanguard Total Bond Market ETF", Shares: 420, CostBasis: 78.10, CurrentPrice: 72.85, AssetClass: "US Bond"},
					{Ticker: "VFIFX", Name: "Vanguard Target Retirement 2050", Shares: 250, CostBasis: 42.80, CurrentPrice: 49.63, AssetClass: "Target Date"},
				},
			},
			{
				ID: "roth-ira", Name: "Roth IRA", Type: "roth_ira", Icon: "🌱",
				Institution: "Fidelity", TaxTreatment: "Tax-Free Growth",
				Holdings: []Holding{
					{Ticker: "QQQ", Name: "Invesco QQQ Trust", Shares: 48, CostBasis: 380.20, CurrentPrice: 485.73, AssetClass: "US Equity"},
					{Ticker: "AAPL", Name: "Apple Inc.", Shares: 40, CostBasis: 142.50, CurrentPrice: 237.85, AssetClass: "US Equity"},
					{Ticker: "MSFT", Name: "Microsoft Corp.", Shares: 22, CostBasis: 285.00, CurrentPrice: 418.92, AssetClass: "US Equity"},
					{Ticker: "AMZN", Name: "Amazon.com Inc.", Shares: 30, CostBasis: 128.40, CurrentPrice: 198.15, AssetClass: "US Equity"},
				},
			},
			{
				ID: "taxable-brokerage", Name: "Taxable Brokerage", Type: "taxable", Icon: "📈",
				Institution: "Fidelity", TaxTreatment: "Taxable",
				Holdings: []Holding{
					{Ticker: "VOO", Name: "Vanguard S&P 500 ETF", Shares: 120, CostBasis: 375.00, CurrentPrice: 502.38, AssetClass: "US Equity"},
					{Ticker: "FDVV", Name: "Fidelity High Dividend ETF", Shares: 280, CostBasis: 68.50, CurrentPrice: 82.45, AssetClass: "US Equity"},
					{Ticker: "GOOGL", Name: "Alphabet Inc.", Shares: 65, CostBasis: 118.30, CurrentPrice: 175.62, AssetClass: "US Equity"},
					{Ticker: "BND", Name: "Vanguard Total Bond Market ETF", Shares: 180, CostBasis: 76.40, CurrentPrice: 72.85, AssetClass: "US Bond"},
					{Ticker: "VTIP", Name: "Vanguard Short-Term Infl-Prot ETF", Shares: 120, CostBasis: 49.20, CurrentPrice: 48.37, AssetClass: "US Bond"},
				},
			},
			{
				ID: "529-education", Name: "529 Education Savings", Type: "529", Icon: "🎓",
				Institution: "Fidelity", TaxTreatment: "Tax-Free (Qualified)", Beneficiary: "Child (age 8)",
				Holdings: []Holding{
					{Ticker: "VGIT", Name: "Vanguard Intermed-Term Treasury ETF", Shares: 150, CostBasis: 60.50, CurrentPrice: 58.92, AssetClass: "US Bond"},
					{Ticker: "VTI", Name: "Vanguard Total Stock Market ETF", Shares: 70, CostBasis: 210.00, CurrentPrice: 268.42, AssetClass: "US Equity"},
					{Ticker: "VXUS", Name: "Vanguard Total Intl Stock ETF", Shares: 180, CostBasis: 54.00, CurrentPrice: 59.17, AssetClass: "Intl Equity"},
				},
			},
			{
				ID: "hsa", Name: "HSA (Health Savings)", Type: "hsa", Icon: "🏥",
				Institution: "Fidelity", TaxTreatment: "Triple Tax-Advantaged",
				Holdings: []Holding{
					{Ticker: "FXAIX", Name: "Fidelity 500 Index Fund", Shares: 48, CostBasis: 155.00, CurrentPrice: 192.84, AssetClass: "US Equity"},
					{Ticker: "FXNAX", Name: "Fidelity US Bond Index Fund", Shares: 350, CostBasis: 11.20, CurrentPrice: 10.75, AssetClass: "US Bond"},
				},
			},
			{
				ID: "daf-charitable", Name: "Donor-Advised Fund", Type: "daf", Icon: "💝",
				Institution: "Fidelity Charitable", TaxTreatment: "Tax-Deductible Donation",
				Holdings: []Holding{
					{Ticker: "NVDA", Name: "NVIDIA Corp.", Shares: 45, CostBasis: 45.00, CurrentPrice: 482.30, AssetClass: "US Equity"},
					{Ticker: "TSLA", Name: "Tesla Inc.", Shares: 35, CostBasis: 210.00, CurrentPrice: 248.50, AssetClass: "US Equity"},
				},
			},
		},
	}
}

func aishaPatel() Client {
	return Client{
		ClientID: "aisha-patel",
		Avatar:   Avatar{Initials: "AP", Color: "#8b5cf6"},
		Owner: Owner{
			Name:              "Aisha Patel",
			Age:               52,
			FilingStatus:      "Single",
			State:             "New York",
			AnnualIncome:      285000,
			TaxBracketFederal: "35%",
			TaxBracketState:   "6.85%",
		},
		W2: W2Income{
			Year:                       2026,
			Employer:                   "Goldman Sachs & Co.",
			EmployerEIN:                "13-5XXXXXX",
			WagesBox1:                  285000,
			FederalWithheldBox2:        62700,
			SocialSecurityWagesBox3:    168600,
			SocialSecurityWithheldBox4: 10453.20,
			MedicareWagesBox5:          285000,
			MedicareWithheldBox6:       4132.50,
			StateWagesBox16:            285000,
			StateWithheldBox17:         19522.50,
			Retirement401kBox12D:       30500,
			HSABox12W:                  4300,
			HealthInsuranceBox12DD:     14200,
		},
		Debts: []Debt{
			{ID: "mortgage", Type: "Mortgage", Icon: "🏠", Lender: "JPMorgan Chase", OriginalBalance: 520000, CurrentBalance: 285000, InterestRate: 0.0375, MonthlyPayment: 2408, Term: "30-year fixed", OriginDate: "2017-05", PropertyValue: 1250000},
			{ID: "rental-mortgage", Type: "Investment Property Mortgage", Icon: "🏢", Lender: "Bank of America", OriginalBalance: 320000, CurrentBalance: 248000, InterestRate: 0.055, MonthlyPayment: 1817, Term: "30-year fixed", OriginDate: "2020-09", PropertyValue: 485000},
		},
		Estate: Estate{
			Will:           WillInfo{Status: "Executed", LastUpdated: "2024-03", Attorney: "Chen & Associates LLP"},
			RevocableTrust: TrustInfo{Status: "Established", Name: "Patel Living Trust", LastUpdated: "2024-03"},
			PowerOfAttorney: POAInfo{
				Financial:  "Brother — Raj Patel",
				Healthcare: "Brother — Raj Patel",
			},
			Beneficiaries: []Beneficiary{
				{Account: "401(k)", Primary: "Patel Living Trust — 100%", Contingent: "Raj Patel (brother) — 100%"},
				{Account: "Roth IRA", Primary: "Patel Living Trust — 100%", Contingent: "Charitable Foundation — 100%"},
				{Account: "Life Insurance", Primary: "Patel Living Trust — 100%", Contingent: "Raj Patel (brother) — 100%"},
			},
			LifeInsurance: LifeInsurance{
				Type: "Term", Provider: "MetLife", CoverageAmount: 1500000,
				Premium: 145, PremiumFrequency: "monthly", Term: "20 years", StartDate: "2019-06",
				Insured: "Aisha Patel",
			},
			UmbrellaInsurance: UmbrellaInsurance{Provider: "Chubb", CoverageAmount: 2000000, AnnualPremium: 620},
			GuardianChild:     "N/A",
		},
		Accounts: []Account{
			{
				ID: "retirement-401k", Name: "401(k) Retirement", Type: "401k", Icon: "🏦",
				Institution: "Fidelity", TaxTreatment: "Tax-Deferred",
				Holdings: []Holding{
					{Ticker: "FXAIX", Name: "Fidelity 500 Index Fund", Shares: 1200, CostBasis: 142.00, CurrentPrice: 192.84, AssetClass: "US Equity"},
					{Ticker: "FSPSX", Name: "Fidelity Intl Index Fund", Shares: 800, CostBasis: 42.50, CurrentPrice: 48.90, AssetClass: "Intl Equity"},
					{Ticker: "FXNAX", Name: "Fidelity US Bond Index Fund", Shares: 2200, CostBasis: 11.80, CurrentPrice: 10.75, AssetClass: "US Bond"},
				},
			},
			{
				ID: "roth-ira", Name: "Roth IRA", Type: "roth_ira", Icon: "🌱",
				Institution: "Vanguard", TaxTreatment: "Tax-Free Growth",
				Holdings: []Holding{
					{Ticker: "VGT", Name: "Vanguard Information Technology ETF", Shares: 65, CostBasis: 320.00, CurrentPrice: 558.40, AssetClass: "US Equity"},
					{Ticker: "VHT", Name: "Vanguard Health Care ETF", Shares: 80, CostBasis: 235.00, CurrentPrice: 262.15, AssetClass: "US Equity"},
				},
			},
			{
				ID: "taxable-brokerage", Name: "Taxable Brokerage", Type: "taxable", Icon: "📈",
				Institution: "Schwab", TaxTreatment: "Taxable",
				Holdings: []Holding{
					{Ticker: "SCHD", Name: "Schwab US Dividend Equity ETF", Shares: 450, CostBasis: 62.00, CurrentPrice: 82.47, AssetClass: "US Equity"},
					{Ticker: "SCHF", Name: "Schwab International Equity ETF", Shares: 600, CostBasis: 32.80, CurrentPrice: 38.52, AssetClass: "Intl Equity"},
					{Ticker: "SCHZ", Name: "Schwab US Aggregate Bond ETF", Shares: 800, CostBasis: 50.20, CurrentPrice: 47.85, AssetClass: "US Bond"},
					{Ticker: "O", Name: "Realty Income Corp.", Shares: 200, CostBasis: 58.40, CurrentPrice: 62.30, AssetClass: "US Equity"},
				},
			},
			{
				ID: "hsa", Name: "HSA (Health Savings)", Type: "hsa", Icon: "🏥",
				Institution: "Fidelity", TaxTreatment: "Triple Tax-Advantaged",
				Holdings: []Holding{
					{Ticker: "VTI", Name: "Vanguard Total Stock Market ETF", Shares: 85, CostBasis: 195.00, CurrentPrice: 268.42, AssetClass: "US Equity"},
				},
			},
		},
	}
}

func carlosReyes() Client {
	return Client{
		ClientID: "carlos-reyes",
		Avatar:   Avatar{Initials: "CR", Color: "#22c55e"},
		Owner: Owner{
			Name:              "Carlos & Maria Reyes",
			Age:               29,
			FilingStatus:      "Married Filing Jointly",
			State:              "Texas",
			AnnualIncome:      140000,
			TaxBracketFederal: "22%",
			TaxBracketState:   "0%",
		},
		W2: W2Income{
			Year:                       2026,
			Employer:                   "Dell Technologies (Carlos) / UT Health (Maria)",
			EmployerEIN:                "74-2XXXXXX",
			WagesBox1:                  140000,
			FederalWithheldBox2:        18200,
			SocialSecurityWagesBox3:    140000,
			SocialSecurityWithheldBox4: 8680,
			MedicareWagesBox5:          140000,
			MedicareWithheldBox6:       2030,
			Retirement401kBox12D:       15000,
			HSABox12W:                  8550,
			HealthInsuranceBox12DD:     12800,
		},
		Debts: []Debt{
			{ID: "student-loan-carlos", Type: "Student Loan (Carlos)", Icon: "🎓", Lender: "Federal Direct (Nelnet)", OriginalBalance: 85000, CurrentBalance: 68500, InterestRate: 0.055, MonthlyPayment: 920, Term: "10-year standard", OriginDate: "2022-01"},
			{ID: "student-loan-maria", Type: "Student Loan (Maria)", Icon: "🎓", Lender: "Federal Direct (MOHELA)", OriginalBalance: 120000, CurrentBalance: 104000, InterestRate: 0.065, MonthlyPayment: 1380, Term: "10-year standard", OriginDate: "2023-06"},
			{ID: "auto-loan", Type: "Auto Loan", Icon: "🚗", Lender: "Capital One Auto", OriginalBalance: 28000, CurrentBalance: 19200, InterestRate: 0.059, MonthlyPayment: 540, Term: "60 months", OriginDate: "2024-03"},
		},
		Estate: Estate{
			Will:           WillInfo{Status: "Not Executed", LastUpdated: "N/A", Attorney: "N/A"},
			RevocableTrust: TrustInfo{Status: "Not Established", Name: "N/A", LastUpdated: "N/A"},
			PowerOfAttorney: POAInfo{
				Financial:  "Not Designated",
				Healthcare: "Not Designated",
			},
			Beneficiaries: []Beneficiary{
				{Account: "401(k) - Carlos", Primary: "Maria Reyes (spouse) — 100%", Contingent: "Parents — 50/50"},
				{Account: "401(k) - Maria", Primary: "Carlos Reyes (spouse) — 100%", Contingent: "Parents — 50/50"},
			},
			LifeInsurance: LifeInsurance{
				Type: "Term", Provider: "Haven Life", CoverageAmount: 500000,
				Premium: 32, PremiumFrequency: "monthly", Term: "20 years", StartDate: "2024-01",
				Insured: "Carlos Reyes",
			},
			UmbrellaInsurance: UmbrellaInsurance{Provider: "N/A"},
			GuardianChild:     "N/A",
		},
		Accounts: []Account{
			{
				ID: "retirement-401k-carlos", Name: "401(k) - Carlos", Type: "401k", Icon: "🏦",
				Institution: "Fidelity", TaxTreatment: "Tax-Deferred",
				Holdings: []Holding{
					{Ticker: "VFFVX", Name: "Vanguard Target Retirement 2055", Shares: 420, CostBasis: 38.50, CurrentPrice: 44.82, AssetClass: "Target Date"},
				},
			},
			{
				ID: "retirement-401k-maria", Name: "401(k) - Maria", Type: "401k", Icon: "🏦",
				Institution: "TIAA", TaxTreatment: "Tax-Deferred",
				Holdings: []Holding{
					{Ticker: "TIAA-CREF", Name: "TIAA-CREF Lifecycle 2060", Shares: 310, CostBasis: 12.40, CurrentPrice: 14.85, AssetClass: "Target Date"},
				},
			},
			{
				ID: "roth-ira-carlos", Name: "Roth IRA - Carlos", Type: "roth_ira", Icon: "🌱",
				Institution: "Vanguard", TaxTreatment: "Tax-Free Growth",
				Holdings: []Holding{
					{Ticker: "VTI", Name: "Vanguard Total Stock Market ETF", Shares: 35, CostBasis: 210.00, CurrentPrice: 268.42, AssetClass: "US Equity"},
					{Ticker: "VXUS", Name: "Vanguard Total Intl Stock ETF", Shares: 80, CostBasis: 52.00, CurrentPrice: 59.17, AssetClass: "Intl Equity"},
				},
			},
			{
				ID: "savings-hysa", Name: "High-Yield Savings (Down Payment)", Type: "savings", Icon: "🏠",
				Institution: "Marcus by Goldman Sachs", TaxTreatment: "Taxable Interest",
				Holdings: []Holding{
					{Ticker: "CASH", Name: "High-Yield Savings @ 4.5% APY", Shares: 1, CostBasis: 42000, CurrentPrice: 42000, AssetClass: "Cash"},
				},
			},
			{
				ID: "hsa", Name: "HSA (Health Savings)", Type: "hsa", Icon: "🏥",
				Institution: "Fidelity", TaxTreatment: "Triple Tax-Advantaged",
				Holdings: []Holding{
					{Ticker: "FZROX", Name: "Fidelity ZERO Total Market Fund", Shares: 220, CostBasis: 14.80, CurrentPrice: 17.25, AssetClass: "US Equity"},
				},
			},
		},
	}
}

func helenPark() Client {
	return Client{
		ClientID: "helen-park",
		Avatar:   Avatar{Initials: "HP", Color: "#f59e0b"},
		Owner: Owner{
			Name:              "Helen Park",
			Age:               67,
			FilingStatus:      "Single",
			State:             "Florida",
			AnnualIncome:      72000,
			TaxBracketFederal: "12%",
			TaxBracketState:   "0%",
		},
		W2: W2Income{
			Year:                2026,
			Employer:            "Retired — Pension & Social Security",
			EmployerEIN:         "N/A",
			FederalWithheldBox2: 3600,
		},
		Debts: []Debt{
			{ID: "mortgage", Type: "Mortgage", Icon: "🏠", Lender: "Rocket Mortgage", OriginalBalance: 180000, CurrentBalance: 62000, InterestRate: 0.035, MonthlyPayment: 808, Term: "30-year fixed", OriginDate: "2012-08", PropertyValue: 385000},
		},
		Estate: Estate{
			Will:           WillInfo{Status: "Executed", LastUpdated: "2025-01", Attorney: "Greenwald Estate Law"},
			RevocableTrust: TrustInfo{Status: "Established", Name: "Park Family Trust", LastUpdated: "2025-01"},
			PowerOfAttorney: POAInfo{
				Financial:  "Daughter — Jennifer Park-Lee",
				Healthcare: "Daughter — Jennifer Park-Lee",
			},
			Beneficiaries: []Beneficiary{
				{Account: "Traditional IRA", Primary: "Park Family Trust — 100%", Contingent: "Grandchildren — equal shares"},
				{Account: "Roth IRA", Primary: "Jennifer Park-Lee (daughter) — 50%, David Park (son) — 50%", Contingent: "Grandchildren — equal shares"},
				{Account: "Life Insurance", Primary: "Park Family Trust — 100%", Contingent: "Jennifer Park-Lee — 100%"},
			},
			LifeInsurance: LifeInsurance{
				Type: "Whole Life", Provider: "New York Life", CoverageAmount: 250000,
				Premium: 210, PremiumFrequency: "monthly", Term: "Permanent", StartDate: "1998-03",
				Insured: "Helen Park",
			},
			UmbrellaInsurance: UmbrellaInsurance{Provider: "USAA", CoverageAmount: 1000000, AnnualPremium: 290},
			GuardianChild:     "N/A (adult children)",
		},
		Accounts: []Account{
			{
				ID: "traditional-ira", Name: "Traditional IRA (Rollover)", Type: "traditional_ira", Icon: "🏦",
				Institution: "Vanguard", TaxTreatment: "Tax-Deferred",
				Holdings: []Holding{
					{Ticker: "VBIAX", Name: "Vanguard Balanced Index Admiral", Shares: 2800, CostBasis: 38.20, CurrentPrice: 48.75, AssetClass: "Target Date"},
					{Ticker: "VBTLX", Name: "Vanguard Total Bond Market Admiral", Shares: 4200, CostBasis: 10.80, CurrentPrice: 9.95, AssetClass: "US Bond"},
					{Ticker: "VTIAX", Name: "Vanguard Total Intl Stock Admiral", Shares: 1500, CostBasis: 28.50, CurrentPrice: 33.40, AssetClass: "Intl Equity"},
				},
			},
			{
				ID: "roth-ira", Name: "Roth IRA", Type: "roth_ira", Icon: "🌱",
				Institution: "Vanguard", TaxTreatment: "Tax-Free Growth",
				Holdings: []Holding{
					{Ticker: "VTI", Name: "Vanguard Total Stock Market ETF", Shares: 120, CostBasis: 180.00, CurrentPrice: 268.42, AssetClass: "US Equity"},
					{Ticker: "VIG", Name: "Vanguard Dividend Appreciation ETF", Shares: 200, CostBasis: 145.00, CurrentPrice: 185.60, AssetClass: "US Equity"},
				},
			},
			{
				ID: "taxable-brokerage", Name: "Taxable Brokerage", Type: "taxable", Icon: "📈",
				Institution: "Vanguard", TaxTreatment: "Taxable",
				Holdings: []Holding{
					{Ticker: "VTSAX", Name: "Vanguard Total Stock Market Admiral", Shares: 350, CostBasis: 85.00, CurrentPrice: 120.45, AssetClass: "US Equity"},
					{Ticker: "VTIAX", Name: "Vanguard Total Intl Stock Admiral", Shares: 280, CostBasis: 26.00, CurrentPrice: 33.40, AssetClass: "Intl Equity"},
					{Ticker: "VTABX", Name: "Vanguard Total Intl Bond Admiral", Shares: 500, CostBasis: 21.50, CurrentPrice: 20.10, AssetClass: "Intl Bond"},
				},
			},
		},
	}
}
