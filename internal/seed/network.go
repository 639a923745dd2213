// Package seed holds the sample podcast network loaded by initialize-defaults.
package seed

import "github.com/sbilibin2017/podcast-network/internal/models"

// Show is a sample show whose host is referenced by name.
type Show struct {
	HostName string
	Input    models.ShowInput
}

// Episode is a sample episode whose show is referenced by title.
type Episode struct {
	ShowTitle string
	Input     models.EpisodeInput
}

// Data is the complete sample network.
type Data struct {
	Hosts       []models.HostInput
	Shows       []Show
	Episodes    []Episode
	Advertisers []models.AdvertiserInput
}

func ptr(s string) *string { return &s }

// Network returns a fresh copy of the sample network.
func Network() Data {
	return Data{
		Hosts:       hosts(),
		Shows:       shows(),
		Episodes:    episodes(),
		Advertisers: advertisers(),
	}
}

func hosts() []models.HostInput {
	return []models.HostInput{
		{
			Name:     "Ranveer Allahbadia",
			Bio:      "Popular Indian YouTuber and podcast host known for BeerBiceps. Covers fitness, entrepreneurship, spirituality, and personal development with millions of followers.",
			Email:    "ranveer@beerbiceps.com",
			ImageURL: ptr("https://media.licdn.com/dms/image/v2/D5603AQGlosHMDk-kwg/profile-displayphoto-shrink_200_200/profile-displayphoto-shrink_200_200/0/1730171107969?e=2147483647&v=beta&t=JjvBV0xZbnAT3K5dKeo-GaXQ7YG6lETvVgWDcIC-3mo"),
		},
		{
			Name:     "Nikhil Kamath",
			Bio:      "Co-founder of Zerodha, India's largest stockbroker. Host of 'WTF is with Nikhil Kamath' featuring conversations with entrepreneurs, athletes, and thought leaders.",
			Email:    "nikhil@wtfpodcast.in",
			ImageURL: ptr("https://isfm.co.in/wp-content/uploads/2025/02/exclusive-profile-shoot-of-nikhil-kamath-co-founder-zerodha-in-bangalore-on-september-22-2023-p-195120405-16x9_0.webp"),
		},
		{
			Name:     "Tanmay Bhat",
			Bio:      "Co-founder of AIB and popular YouTuber. Known for gaming streams, comedy, and candid conversations about internet culture and content creation in India.",
			Email:    "tanmay@tanmaybhat.com",
			ImageURL: ptr("https://cdn.starclinch.in/artist/tanmay-bhat/tanmay-bhat.jpg?width=3840&quality=100&format=webp&flop=false"),
		},
		{
			Name:     "Raj Shamani",
			Bio:      "Young entrepreneur and host of 'Figuring Out' podcast. Interviews successful Indians about their journey, business strategies, and life lessons.",
			Email:    "raj@rajshamani.com",
			ImageURL: ptr("https://i.scdn.co/image/ab6765630000ba8a271520bec0ac82d57d0c2689"),
		},
		{
			Name:     "Ishan Sharma",
			Bio:      "Tech YouTuber and career coach for Indian youth. Discusses coding, tech careers, college life, and opportunities in the tech industry.",
			Email:    "ishan@ishansharma.com",
			ImageURL: ptr("https://media.licdn.com/dms/image/v2/D5603AQGTvsgbw8iuQw/profile-displayphoto-scale_200_200/B56ZhrRUgHHQAc-/0/1754146361816?e=2147483647&v=beta&t=omLoI8fcs_qrBXQHZYGdgjJv0OyAlYENewd5r2e-oHM"),
		},
		{
			Name:     "Sushant Divgikar",
			Bio:      "Drag artist, LGBTQ+ activist, and performer known as Rani Ko-HE-Nur. Advocate for diversity, inclusion, and queer rights in India.",
			Email:    "sushant@raniko-he-nur.com",
			ImageURL: ptr("https://upload.wikimedia.org/wikipedia/commons/e/e9/Sushant_Divgikar.jpg"),
		},
		{
			Name:     "Cyrus Broacha",
			Bio:      "Veteran comedian, TV host, and podcaster. Pioneer of Indian comedy shows and creator of India's longest-running podcast.",
			Email:    "cyrus@cyrussays.com",
			ImageURL: ptr("https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTukKUD6t1FC3H7L8XcY08ht98Afe52K-p7Pw&s"),
		},
		{
			Name:     "Sejal Kumar",
			Bio:      "Fashion and lifestyle content creator. One of India's top fashion YouTubers sharing style tips, sustainable fashion, and beauty trends.",
			Email:    "sejal@sejalstyle.com",
			ImageURL: ptr("https://en.wikiflux.org/wiki/images/3/3e/Sejal_kumar.jpg"),
		},
		{
			Name:     "Kushal Mehra",
			Bio:      "Rationalist, podcaster, and social commentator. Known for thought-provoking debates on politics, religion, and free speech in India.",
			Email:    "kushal@carvaka.in",
			ImageURL: ptr("https://www.hindustantimes.com/ht-img/img/2025/11/04/550x309/Kushal_Mehra_1762228639791_1762228639955.jpg"),
		},
		{
			Name:     "Masoom Minawala",
			Bio:      "Global fashion influencer and entrepreneur. First Indian fashion blogger to walk international runways and collaborate with luxury brands.",
			Email:    "masoom@masoomminawala.com",
			ImageURL: ptr("https://www.deccanchronicle.com/h-upload/2024/04/20/1086863-masoombook.webp"),
		},
	}
}

func shows() []Show {
	show := func(host, title, description, category, cover string) Show {
		return Show{
			HostName: host,
			Input: models.ShowInput{
				Title:         title,
				Description:   description,
				Category:      category,
				CoverImageURL: ptr(cover),
				Status:        models.ShowStatusActive,
			},
		}
	}

	return []Show{
		show("Ranveer Allahbadia", "The Ranveer Show",
			"Deep dive conversations with successful entrepreneurs, Bollywood celebrities, spiritual leaders, and change-makers. Uncensored, unfiltered discussions about life, business, and success in India.",
			"Entrepreneurship & Self-Improvement",
			"https://media.licdn.com/dms/image/v2/D5603AQGlosHMDk-kwg/profile-displayphoto-shrink_200_200/profile-displayphoto-shrink_200_200/0/1730171107969?e=2147483647&v=beta&t=JjvBV0xZbnAT3K5dKeo-GaXQ7YG6lETvVgWDcIC-3mo"),
		show("Nikhil Kamath", "WTF is with Nikhil Kamath",
			"India's top entrepreneurs, athletes, and thought leaders share their stories. From startup founders to Olympic champions, explore what made them successful.",
			"Business & Finance",
			"https://images.unsplash.com/photo-1559526324-4b87b5e36e44?w=400"),
		show("Tanmay Bhat", "Honestly by Tanmay Bhat",
			"Gaming, comedy, and unfiltered takes on internet culture. Tanmay chats with creators, comedians, and internet personalities about building online presence.",
			"Gaming & Internet Culture",
			"https://images.unsplash.com/photo-1511512578047-dfb367046420?w=400"),
		show("Raj Shamani", "Figuring Out with Raj Shamani",
			"Young entrepreneurs and professionals share their success stories, failures, and advice for building careers and businesses in India.",
			"Business & Career",
			"https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=400"),
		show("Sushant Divgikar", "The Sushant Divgikar Podcast",
			"Conversations about LGBTQ+ rights, art, performance, and identity. Creating safe spaces for diverse voices in India.",
			"LGBTQ+ & Society",
			"https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=400"),
		show("Cyrus Broacha", "Cyrus Says",
			"India's longest-running podcast by Cyrus Broacha. Comedy, current events, and conversations with celebrities, politicians, and interesting Indians.",
			"Comedy & Current Affairs",
			"https://images.unsplash.com/photo-1527224857830-43a7acc85260?w=400"),
		show("Sejal Kumar", "The Fashion Edit",
			"Fashion trends, sustainable fashion, and beauty industry insights. Discussions with designers, influencers, and entrepreneurs in Indian fashion.",
			"Fashion & Lifestyle",
			"https://images.unsplash.com/photo-1483985988355-763728e1935b?w=400"),
		show("Ishan Sharma", "Tech Careers India",
			"Coding tutorials, career advice, and tech industry insights for Indian students and professionals. From college to Silicon Valley.",
			"Technology & Careers",
			"https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=400"),
		show("Kushal Mehra", "The Carvaka Podcast",
			"Rational discourse on politics, religion, free speech, and social issues. Challenging orthodoxy and promoting critical thinking in India.",
			"Politics & Philosophy",
			"https://images.unsplash.com/photo-1541872703-74c5e44368f9?w=400"),
		show("Masoom Minawala", "Style & Substance",
			"Global fashion, entrepreneurship in fashion industry, and building a personal brand. Insights from India's top fashion influencer.",
			"Fashion & Entrepreneurship",
			"https://images.unsplash.com/photo-1445205170230-053b83016050?w=400"),
	}
}

func episodes() []Episode {
	episode := func(show string, number, minutes int, title, description, audio, video, thumbnail string) Episode {
		return Episode{
			ShowTitle: show,
			Input: models.EpisodeInput{
				Title:           title,
				Description:     description,
				DurationMinutes: minutes,
				AudioURL:        ptr(audio),
				VideoURL:        ptr(video),
				ThumbnailURL:    ptr(thumbnail),
				EpisodeNumber:   number,
				Status:          models.EpisodeStatusPublished,
			},
		}
	}

	return []Episode{
		episode("The Ranveer Show", 1, 38,
			"Virat Kohli on Cricket, Fitness & Mental Strength",
			"Indian cricket legend Virat Kohli shares his journey from Delhi boy to captain of Team India. Discusses mental health, fitness routines, and handling pressure at the highest level.",
			"https://example.com/audio/ranveer-virat.mp3",
			"https://www.youtube.com/watch?v=RoHEZmHZxzM",
			"https://www.livehindustan.com/lh-img/smart/img/2025/08/18/original/virat_kohli_Century_1755524314723_1755524344202.jpg"),
		episode("The Ranveer Show", 2, 13,
			"Sadhguru on Purpose of Life",
			"Spiritual leader Sadhguru answers a question about the purpose of life and explains why having a \"god-given\" purpose will only restrict life.",
			"https://example.com/audio/ranveer-sadhguru.mp3",
			"https://www.youtube.com/watch?v=vQ7ZvPghdy8",
			"https://upload.wikimedia.org/wikipedia/commons/2/21/Sadhguru-Jaggi-Vasudev.jpg"),
		episode("The Ranveer Show", 3, 37,
			"Karan Johar: Bollywood",
			"Get a rare glimpse into Karan's entrepreneurial side as he shares the startup journey of @DharmaMovies and the budgeting challenges of producing hit movies (which, as it turns out, can sometimes still result in losses). Don't miss this opportunity to learn from the best in the business!",
			"https://example.com/audio/ranveer-karan.mp3",
			"https://www.youtube.com/watch?v=zl8XHf0naqg",
			"https://img.indiaforums.com/person/480x360/0/0688-karan-johar.webp?c=4bD211"),
		episode("WTF is with Nikhil Kamath", 1, 88,
			"Ritesh Agarwal: Building OYO from Scratch",
			"OYO founder Ritesh Agarwal shares his entrepreneurial journey from teenage dropout to building India's largest hospitality chain. Lessons on scaling, fundraising, and surviving failures.",
			"https://example.com/audio/wtf-ritesh.mp3",
			"https://www.youtube.com/watch?v=B9jZABnvq9A",
			"https://images.financialexpressdigital.com/2019/09/Ritesh-Agarwal-s.jpg"),
		episode("WTF is with Nikhil Kamath", 2, 81,
			"PV Sindhu: Olympic Glory & Mental Toughness",
			"Badminton champion PV Sindhu talks about winning Olympic medals, dealing with losses, and the discipline required to be a world champion.",
			"https://example.com/audio/wtf-sindhu.mp3",
			"https://www.youtube.com/watch?v=jB5xn3aONW0",
			"https://bsmedia.business-standard.com/_media/bs/img/article/2016-08/20/full/1471666470-0938.jpg?im=FeatureCrop,size=(826,465)"),
	}
}

func advertisers() []models.AdvertiserInput {
	advertiser := func(company, contact, email, phone string, budget float64) models.AdvertiserInput {
		return models.AdvertiserInput{
			CompanyName:   company,
			ContactPerson: contact,
			Email:         email,
			Phone:         phone,
			Budget:        budget,
			Status:        models.AdvertiserStatusActive,
		}
	}

	return []models.AdvertiserInput{
		advertiser("Boat Lifestyle", "Aman Gupta", "aman@boat-lifestyle.com", "+91 98765 43210", 85000),
		advertiser("CRED", "Kunal Shah", "partnerships@cred.club", "+91 98765 43211", 120000),
		advertiser("Zerodha", "Nithin Kamath", "marketing@zerodha.com", "+91 98765 43212", 95000),
		advertiser("Razorpay", "Shashank Kumar", "shashank@razorpay.com", "+91 98765 43213", 78000),
		advertiser("Nykaa", "Falguni Nayar", "partnerships@nykaa.com", "+91 98765 43214", 92000),
		advertiser("Mamaearth", "Ghazal Alagh", "ghazal@mamaearth.in", "+91 98765 43215", 68000),
		advertiser("PhonePe", "Sameer Nigam", "marketing@phonepe.com", "+91 98765 43216", 105000),
		advertiser("Meesho", "Vidit Aatrey", "vidit@meesho.com", "+91 98765 43217", 72000),
		advertiser("Groww", "Lalit Keshre", "partnerships@groww.in", "+91 98765 43218", 88000),
		advertiser("Dream11", "Harsh Jain", "harsh@dream11.com", "+91 98765 43219", 110000),
		advertiser("Zomato", "Deepinder Goyal", "marketing@zomato.com", "+91 98765 43220", 98000),
		advertiser("Paytm", "Vijay Shekhar Sharma", "partnerships@paytm.com", "+91 98765 43221", 102000),
	}
}
