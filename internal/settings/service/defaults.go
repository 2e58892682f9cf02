package service

import "carhire/pkg/model"

const defaultFavicon = "/favicon.png"

func DefaultPricing() model.PricingSettings {
	return model.PricingSettings{
		InsuranceRatePerDay: 25,
		DeliveryFlatRate:    75,
		MinimumRentalDays:   1,
		MaximumRentalDays:   30,
		TaxRate:             10,
		EnableInsurance:     true,
		EnableDelivery:      true,
		EnableTax:           false,
	}
}

func DefaultWebsite() model.WebsiteSettings {
	return model.WebsiteSettings{
		WebsiteName: "Premium Car Rentals Australia",
		Favicon:     defaultFavicon,
		CompanyName: "Premium Car Rentals Australia",
		Email:       "info@premiumcarrentals.com.au",
		Phone:       "+61 2 9999 8888",
		Address:     "123 Premium Street, Sydney, NSW 2000, Australia",
		Description: "Australia's premier car rental service offering luxury vehicles, premium sedans, SUVs, and sports cars. " +
			"Book your perfect vehicle for your Australian adventure with exceptional service and competitive rates.",

		MetaDescription: "Premium car rental in Australia. Choose from luxury sedans, SUVs, sports cars and more. " +
			"Best rates, flexible bookings, and exceptional service across Sydney, Melbourne, Brisbane, Perth, and Adelaide. " +
			"Book your dream car today.",
		MetaKeywords: "car rental Australia, luxury car hire Australia, premium car rental Sydney, car hire Melbourne, " +
			"rent car Brisbane, vehicle rental Perth, car rental Adelaide, Australia car hire, premium vehicles Australia, luxury cars Australia",

		HeroTitle: "Premium Car Rentals Australia",
		HeroSubtitle: "Experience luxury and performance with Australia's finest collection of premium vehicles. " +
			"Available across Sydney, Melbourne, Brisbane, Perth, and Adelaide.",
		HeroButtonText:    "Browse Our Fleet",
		HeroButtonLink:    "/cars",
		HeroLearnMoreText: "Learn More",
		HeroLearnMoreLink: "#features",

		Testimonials: []model.Testimonial{
			{
				Name:     "James Davidson",
				Location: "Business Executive",
				Quote: "Outstanding service! The Tesla Model 3 was in perfect condition, and the booking process was seamless. " +
					"Premium Car Rentals Australia made my business trip incredibly convenient.",
				Rating: 5,
			},
			{
				Name:     "Sarah Martinez",
				Location: "Family Traveler",
				Quote: "We rented the BMW X5 for our family vacation and it was perfect! Spacious, comfortable, " +
					"and the customer support was fantastic. Highly recommend!",
				Rating: 5,
			},
		},
		Stats: []model.Stat{
			{Label: "Premium Vehicles", Value: "50+"},
			{Label: "Happy Customers", Value: "10k+"},
			{Label: "Cities Served", Value: "5"},
			{Label: "Support", Value: "24/7"},
		},
		TermsAndConditions: defaultTerms,
	}
}

const defaultTerms = `## Agreement to Terms
By accessing our website and using our car rental services, you agree to be bound by these Terms and Conditions and all applicable laws and regulations. If you do not agree with any of these terms, you are prohibited from using or accessing this site.

## 1. Use License
Permission is granted to temporarily view the materials (information or software) on our website for personal, non-commercial transitory viewing only. This is the grant of a license, not a transfer of title, and under this license you may not:
* Modify or copy the materials;
* Use the materials for any commercial purpose, or for any public display (commercial or non-commercial);
* Attempt to decompile or reverse engineer any software contained on our website;
* Remove any copyright or other proprietary notations from the materials; or
* Transfer the materials to another person or "mirror" the materials on any other server.

## 2. Disclaimer
The materials on our website are provided on an 'as is' basis. We make no warranties, expressed or implied, and hereby disclaim and negate all other warranties including, without limitation, implied warranties or conditions of merchantability, fitness for a particular purpose, or non-infringement of intellectual property or other violation of rights.

## 3. Limitations
In no event shall we or our suppliers be liable for any damages (including, without limitation, damages for loss of data or profit, or due to business interruption) arising out of the use or inability to use the materials on our website, even if we or an authorized representative has been notified orally or in writing of the possibility of such damage.

## 4. Accuracy of Materials
The materials appearing on our website could include technical, typographical, or photographic errors. We do not warrant that any of the materials on our website are accurate, complete or current. We may make changes to the materials contained on our website at any time without notice.

## 5. Governing Law
These terms and conditions are governed by and construed in accordance with the laws of the location of our headquarters and you irrevocably submit to the exclusive jurisdiction of the courts in that State or location.`
