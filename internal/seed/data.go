package seed

import "reinsure/internal/domain/content"

var services = []content.Service{
	{
		Title:        "Commercial Vehicle Insurance",
		Description:  "Comprehensive insurance coverage for all types of commercial vehicles including goods carriers, taxis, and buses.",
		Icon:         "Truck",
		Category:     "vehicle",
		Order:        1,
		IsActive:     true,
		EMIAvailable: true,
		SubTypes:     []string{"Goods Carrying", "Taxi (up to 6 passengers)", "Bus", "Others"},
		Features: []string{
			"Best Price Guarantee",
			"Easy EMI Options",
			"Third Party & Comprehensive Coverage",
			"Owner-Driver Personal Accident",
			"Quick Claim Settlement",
			"24/7 Support",
		},
	},
	{
		Title:        "Two Wheeler Insurance",
		Description:  "Complete protection for your bike or scooter with comprehensive and third-party coverage options.",
		Icon:         "Bike",
		Category:     "vehicle",
		Order:        2,
		IsActive:     true,
		EMIAvailable: true,
		SubTypes:     []string{"Bike", "Scooter"},
		Features: []string{
			"Best Price Guarantee",
			"Easy EMI Options",
			"Comprehensive & Third Party Plans",
			"Personal Accident Cover",
			"Instant Policy Issuance",
			"Doorstep Service",
		},
	},
	{
		Title:        "Long Term Two Wheeler Insurance",
		Description:  "Save more with multi-year insurance plans for your two-wheeler. No renewal hassle for 2, 3, or 5 years.",
		Icon:         "Calendar",
		Category:     "vehicle",
		Order:        3,
		IsActive:     true,
		EMIAvailable: true,
		SubTypes:     []string{"2 Year Plan", "3 Year Plan", "5 Year Plan"},
		Features: []string{
			"Long-term Savings",
			"No Renewal Hassle",
			"Easy EMI Options",
			"Locked-in Premium Rates",
			"Comprehensive Coverage",
			"Free Add-ons",
		},
	},
	{
		Title:        "Health Insurance",
		Description:  "Comprehensive health coverage for you and your family with cashless treatment and extensive hospital network.",
		Icon:         "Heart",
		Category:     "health",
		Order:        4,
		IsActive:     true,
		EMIAvailable: true,
		SubTypes:     []string{"Individual", "Family Floater", "Senior Citizen"},
		Features: []string{
			"Cashless Treatment",
			"Easy EMI Options",
			"Pre & Post Hospitalization",
			"No Claim Bonus",
			"Tax Benefits",
			"Wide Hospital Network",
		},
	},
}

var testimonials = []content.Testimonial{
	{
		Name:       "Rajesh Kumar",
		Role:       "Fleet Owner, Delhi",
		Text:       "Fast claim processing and personal attention. Reinsure made my commercial vehicle insurance hassle-free. Highly recommended!",
		Rating:     5,
		IsApproved: true,
		Order:      1,
	},
	{
		Name:       "Priya Sharma",
		Role:       "Business Owner, Mumbai",
		Text:       "The EMI facility and transparent pricing won me over. I've been with Reinsure for 3 years and counting.",
		Rating:     5,
		IsApproved: true,
		Order:      2,
	},
	{
		Name:       "Anil Mehta",
		Role:       "Transport Company, Jaipur",
		Text:       "Their 24/7 claim support saved me during an emergency. Professional, quick, and genuinely caring.",
		Rating:     5,
		IsApproved: true,
		Order:      3,
	},
	{
		Name:       "Sunita Verma",
		Role:       "Individual Policyholder, Bangalore",
		Text:       "I never thought insurance could be this simple. The team at Reinsure explained everything clearly and I got covered the same day.",
		Rating:     5,
		IsApproved: true,
		Order:      4,
	},
}

var faqs = []content.FAQ{
	{
		Question: "What types of insurance do you offer?",
		Answer:   "We specialize in commercial vehicle insurance, two-wheeler insurance (including long-term plans), and health insurance. We offer both comprehensive and third-party coverage options with flexible EMI plans.",
		Category: "general",
	},
	{
		Question: "How fast is the claim settlement process?",
		Answer:   "Most claims are processed within 7-10 working days. Our dedicated claim support team assists you via phone and WhatsApp throughout the entire process.",
		Category: "claims",
	},
	{
		Question: "Can I pay my premium in installments?",
		Answer:   "Yes! We offer flexible EMI and part-payment options for all our insurance products so you can get covered without any financial burden.",
		Category: "payment",
	},
	{
		Question: "Do you provide roadside assistance?",
		Answer:   "Absolutely. Our comprehensive vehicle insurance plans include 24/7 roadside assistance and doorstep vehicle support across India.",
		Category: "vehicle",
	},
	{
		Question: "How do I get a quote?",
		Answer:   "Simply click on any insurance service card and fill out the quote form with your details. You'll receive a competitive quote within minutes from our expert advisors.",
		Category: "general",
	},
	{
		Question: "What is the difference between comprehensive and third-party insurance?",
		Answer:   "Third-party insurance covers damages to other vehicles and people, which is mandatory by law. Comprehensive insurance covers both third-party damages and your own vehicle damages including theft, fire, natural disasters, and accidents.",
		Category: "vehicle",
	},
	{
		Question: "What documents do I need to purchase insurance?",
		Answer:   "For vehicle insurance, you need your vehicle RC (Registration Certificate), previous policy copy (for renewal), and valid ID proof. For health insurance, you need age proof, ID proof, and medical reports if applicable.",
		Category: "general",
	},
	{
		Question: "Can I renew my policy after it expires?",
		Answer:   "Yes, but it's recommended to renew before expiry to avoid penalties and maintain continuous coverage. If your policy has expired, you may need to get your vehicle inspected before renewal.",
		Category: "renewal",
	},
	{
		Question: "What are the benefits of long-term two-wheeler insurance?",
		Answer:   "Long-term plans (2, 3, or 5 years) offer significant savings, locked-in premium rates, no annual renewal hassle, and protection against premium hikes. You also get easy EMI options to spread the cost.",
		Category: "vehicle",
	},
	{
		Question: "Is personal accident cover included in vehicle insurance?",
		Answer:   "Yes, owner-driver personal accident cover of ₹15 lakhs is mandatory and included in all vehicle insurance policies. You can also opt for additional passenger cover.",
		Category: "vehicle",
	},
	{
		Question: "What is No Claim Bonus (NCB)?",
		Answer:   "NCB is a discount on your premium for every claim-free year, ranging from 20% to 50%. It's applicable on own damage premium and can be transferred when you change vehicles or insurers.",
		Category: "vehicle",
	},
	{
		Question: "Does health insurance cover pre-existing diseases?",
		Answer:   "Yes, but typically after a waiting period of 2-4 years depending on the policy. Some critical illnesses may have specific waiting periods. It's important to disclose all pre-existing conditions at the time of purchase.",
		Category: "health",
	},
	{
		Question: "How do I file a claim?",
		Answer:   "Contact us immediately after an incident via phone or WhatsApp. Our team will guide you through the process, help with documentation, and coordinate with the insurance company for quick settlement.",
		Category: "claims",
	},
	{
		Question: "Can I transfer my insurance to a new vehicle?",
		Answer:   "No, vehicle insurance is specific to the registered vehicle. However, you can transfer your No Claim Bonus (NCB) to a new vehicle when you purchase a new policy.",
		Category: "vehicle",
	},
	{
		Question: "Can I cancel my policy and get a refund?",
		Answer:   "Yes, you can cancel your policy. Refund is calculated on a pro-rata basis for the unused period, minus applicable charges. The process and refund amount depend on your insurer's terms and conditions.",
		Category: "general",
	},
}
