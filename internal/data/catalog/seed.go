// Package catalog holds the static seed dataset: service categories, cities,
// worker profiles and reviews. It is the read-only source the listing,
// wizard and dashboard operate over - nothing here is mutated at runtime.
package catalog

import "awami-saholat/internal/data/entity"

var serviceCategories = []entity.ServiceCategory{
	{ID: 1, Name: "Plumber", Icon: "🔧", Description: "Pipe repairs, leakages, water tank and sanitary fittings"},
	{ID: 2, Name: "Electrician", Icon: "⚡", Description: "Wiring, UPS installation, breaker and appliance repairs"},
	{ID: 3, Name: "Carpenter", Icon: "🪚", Description: "Furniture repair, doors, cabinets and custom woodwork"},
	{ID: 4, Name: "Painter", Icon: "🎨", Description: "Interior and exterior painting, wall putty and polish"},
	{ID: 5, Name: "AC Technician", Icon: "❄️", Description: "AC installation, gas refill, servicing and repairs"},
	{ID: 6, Name: "Cleaner", Icon: "🧹", Description: "Deep cleaning for homes, offices, sofas and carpets"},
}

var cities = []entity.City{
	{ID: 1, Name: "Islamabad"},
	{ID: 2, Name: "Rawalpindi"},
	{ID: 3, Name: "Lahore"},
	{ID: 4, Name: "Karachi"},
	{ID: 5, Name: "Faisalabad"},
	{ID: 6, Name: "Multan"},
}

var workers = []entity.Worker{
	{
		ID: 1, Name: "Muhammad Imran", ServiceID: 1, ServiceType: "Plumber",
		City: "Islamabad", Area: "G-11", PricePerHour: 1500, Rating: 4.7,
		TotalReviews: 124, Verified: true, Experience: "8 years",
		CompletedJobs: 340, ResponseTime: "Within 30 mins",
		Languages: []string{"Urdu", "English"}, Availability: "Available today",
		Image:       "https://images.awamisaholat.pk/workers/1.jpg",
		Description: "Specialist in leak detection, water tank cleaning and full bathroom fittings.",
	},
	{
		ID: 2, Name: "Ahmed Raza", ServiceID: 2, ServiceType: "Electrician",
		City: "Islamabad", Area: "F-7", PricePerHour: 1800, Rating: 4.5,
		TotalReviews: 98, Verified: true, Experience: "6 years",
		CompletedJobs: 210, ResponseTime: "Within 1 hour",
		Languages: []string{"Urdu", "English"}, Availability: "Available today",
		Image:       "https://images.awamisaholat.pk/workers/2.jpg",
		Description: "House wiring, UPS and solar inverter installation, breaker panel repairs.",
	},
	{
		ID: 3, Name: "Bilal Hussain", ServiceID: 2, ServiceType: "Electrician",
		City: "Lahore", Area: "Gulberg", PricePerHour: 1500, Rating: 4.8,
		TotalReviews: 156, Verified: true, Experience: "10 years",
		CompletedJobs: 420, ResponseTime: "Within 30 mins",
		Languages: []string{"Urdu", "Punjabi"}, Availability: "Available tomorrow",
		Image:       "https://images.awamisaholat.pk/workers/3.jpg",
		Description: "Complete electrical solutions for homes and small offices.",
	},
	{
		ID: 4, Name: "Usman Khalid", ServiceID: 3, ServiceType: "Carpenter",
		City: "Lahore", Area: "Johar Town", PricePerHour: 2000, Rating: 4.6,
		TotalReviews: 87, Verified: false, Experience: "7 years",
		CompletedJobs: 190, ResponseTime: "Within 2 hours",
		Languages: []string{"Urdu", "Punjabi"}, Availability: "Available today",
		Image:       "https://images.awamisaholat.pk/workers/4.jpg",
		Description: "Custom wardrobes, kitchen cabinets, door and window frames.",
	},
	{
		ID: 5, Name: "Shahid Mehmood", ServiceID: 4, ServiceType: "Painter",
		City: "Rawalpindi", Area: "Bahria Town", PricePerHour: 1200, Rating: 4.3,
		TotalReviews: 64, Verified: true, Experience: "5 years",
		CompletedJobs: 150, ResponseTime: "Within 1 hour",
		Languages: []string{"Urdu"}, Availability: "Available today",
		Image:       "https://images.awamisaholat.pk/workers/5.jpg",
		Description: "Interior and exterior painting with weather-proof finishes.",
	},
	{
		ID: 6, Name: "Kamran Ali", ServiceID: 5, ServiceType: "AC Technician",
		City: "Karachi", Area: "Gulshan-e-Iqbal", PricePerHour: 2500, Rating: 4.9,
		TotalReviews: 203, Verified: true, Experience: "12 years",
		CompletedJobs: 510, ResponseTime: "Within 30 mins",
		Languages: []string{"Urdu", "English", "Sindhi"}, Availability: "Available today",
		Image:       "https://images.awamisaholat.pk/workers/6.jpg",
		Description: "Split and inverter AC installation, gas refill and compressor repair.",
	},
	{
		ID: 7, Name: "Saima Batool", ServiceID: 6, ServiceType: "Cleaner",
		City: "Islamabad", Area: "E-11", PricePerHour: 1000, Rating: 4.4,
		TotalReviews: 72, Verified: true, Experience: "4 years",
		CompletedJobs: 260, ResponseTime: "Within 2 hours",
		Languages: []string{"Urdu"}, Availability: "Available tomorrow",
		Image:       "https://images.awamisaholat.pk/workers/7.jpg",
		Description: "Deep home cleaning with a trained two-person team.",
	},
	{
		ID: 8, Name: "Tariq Javed", ServiceID: 1, ServiceType: "Plumber",
		City: "Karachi", Area: "Clifton", PricePerHour: 1700, Rating: 4.2,
		TotalReviews: 55, Verified: false, Experience: "6 years",
		CompletedJobs: 130, ResponseTime: "Within 1 hour",
		Languages: []string{"Urdu", "Sindhi"}, Availability: "Available today",
		Image:       "https://images.awamisaholat.pk/workers/8.jpg",
		Description: "Water pump installation, drainage and geyser repairs.",
	},
	{
		ID: 9, Name: "Adeel Akhtar", ServiceID: 5, ServiceType: "AC Technician",
		City: "Lahore", Area: "DHA Phase 5", PricePerHour: 2200, Rating: 4.5,
		TotalReviews: 118, Verified: true, Experience: "9 years",
		CompletedJobs: 300, ResponseTime: "Within 1 hour",
		Languages: []string{"Urdu", "Punjabi", "English"}, Availability: "Available today",
		Image:       "https://images.awamisaholat.pk/workers/9.jpg",
		Description: "All AC brands serviced, annual maintenance contracts available.",
	},
	{
		ID: 10, Name: "Rashid Mahmood", ServiceID: 4, ServiceType: "Painter",
		City: "Faisalabad", Area: "Peoples Colony", PricePerHour: 1100, Rating: 4.1,
		TotalReviews: 39, Verified: false, Experience: "3 years",
		CompletedJobs: 85, ResponseTime: "Within 3 hours",
		Languages: []string{"Urdu", "Punjabi"}, Availability: "Available tomorrow",
		Image:       "https://images.awamisaholat.pk/workers/10.jpg",
		Description: "Budget-friendly wall painting and putty work.",
	},
	{
		ID: 11, Name: "Naveed Anjum", ServiceID: 3, ServiceType: "Carpenter",
		City: "Islamabad", Area: "Blue Area", PricePerHour: 2400, Rating: 4.7,
		TotalReviews: 143, Verified: true, Experience: "11 years",
		CompletedJobs: 380, ResponseTime: "Within 1 hour",
		Languages: []string{"Urdu", "English"}, Availability: "Available today",
		Image:       "https://images.awamisaholat.pk/workers/11.jpg",
		Description: "Office furniture, partitions and high-end woodwork.",
	},
	{
		ID: 12, Name: "Zubair Shah", ServiceID: 6, ServiceType: "Cleaner",
		City: "Multan", Area: "Cantt", PricePerHour: 1000, Rating: 4.0,
		TotalReviews: 28, Verified: false, Experience: "2 years",
		CompletedJobs: 60, ResponseTime: "Within 2 hours",
		Languages: []string{"Urdu", "Saraiki"}, Availability: "Available today",
		Image:       "https://images.awamisaholat.pk/workers/12.jpg",
		Description: "Sofa, carpet and full house cleaning services.",
	},
}

var reviews = []entity.Review{
	{WorkerID: 1, Customer: "Hassan A.", Rating: 5, Comment: "Fixed a stubborn kitchen leak in one visit. Very professional.", Date: "2025-06-14"},
	{WorkerID: 1, Customer: "Maria K.", Rating: 4, Comment: "Good work on the bathroom fittings, arrived a bit late.", Date: "2025-05-02"},
	{WorkerID: 2, Customer: "Fahad S.", Rating: 5, Comment: "Installed our UPS wiring neatly, explained everything.", Date: "2025-07-21"},
	{WorkerID: 2, Customer: "Ayesha R.", Rating: 4, Comment: "Sorted the tripping breaker quickly.", Date: "2025-04-18"},
	{WorkerID: 3, Customer: "Imtiaz B.", Rating: 5, Comment: "Best electrician in Gulberg, rewired our whole upper portion.", Date: "2025-08-01"},
	{WorkerID: 3, Customer: "Sana M.", Rating: 5, Comment: "Very honest about what actually needed replacing.", Date: "2025-06-30"},
	{WorkerID: 4, Customer: "Omer F.", Rating: 4, Comment: "Kitchen cabinets came out great.", Date: "2025-03-11"},
	{WorkerID: 5, Customer: "Rabia T.", Rating: 4, Comment: "Clean painting job, covered all the furniture properly.", Date: "2025-05-25"},
	{WorkerID: 6, Customer: "Danish W.", Rating: 5, Comment: "AC cooling like new after gas refill. Highly recommended.", Date: "2025-07-08"},
	{WorkerID: 6, Customer: "Nida H.", Rating: 5, Comment: "Came within 30 minutes in peak summer. Lifesaver.", Date: "2025-06-19"},
	{WorkerID: 7, Customer: "Asma J.", Rating: 4, Comment: "Thorough deep clean before Eid, very organised team.", Date: "2025-03-29"},
	{WorkerID: 9, Customer: "Kashif I.", Rating: 5, Comment: "Serviced three ACs in one afternoon, fair pricing.", Date: "2025-07-15"},
	{WorkerID: 11, Customer: "Salman Q.", Rating: 5, Comment: "Built custom office partitions exactly to spec.", Date: "2025-02-07"},
}

// Services returns the seed service categories in insertion order.
func Services() []entity.ServiceCategory { return serviceCategories }

// Cities returns the seed cities in insertion order.
func Cities() []entity.City { return cities }

// Workers returns the seed worker profiles in insertion order.
func Workers() []entity.Worker { return workers }

// Reviews returns the seed reviews.
func Reviews() []entity.Review { return reviews }
