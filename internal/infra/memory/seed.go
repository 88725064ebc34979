package memory

import (
	"time"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/google/uuid"
)

// ContentSeed é o conteúdo público do site (serviços, blog, depoimentos...).
func ContentSeed() Seed {
	return Seed{
		Services:     seedServices(),
		Posts:        seedPosts(),
		Testimonials: seedTestimonials(),
		Features:     seedFeatures(),
		Pricing:      seedPricing(),
		FAQs:         seedFAQs(),
	}
}

// MockSeed = ContentSeed + leads e reservas de exemplo para o painel.
func MockSeed() Seed {
	s := ContentSeed()
	s.Leads = []entity.Lead{
		{
			ID:         "1",
			Name:       "Abebe Bikila",
			Email:      "abebe@marathon.et",
			Phone:      "+251 911 234 567",
			Website:    "www.ethiorun.com",
			Industry:   "startup",
			Issue:      "Need a scalable registration system for events.",
			Date:       time.Date(2025, 10, 10, 14, 30, 0, 0, time.UTC),
			Status:     entity.LeadNew,
			TotalSpend: 12000,
		},
		{
			ID:         "2",
			Name:       "Sara Tadesse",
			Email:      "sara@fintech.et",
			Phone:      "+251 922 987 654",
			Website:    "www.yenepay.com",
			Industry:   "fintech",
			Issue:      "Security audit required for new payment gateway.",
			Date:       time.Date(2025, 10, 9, 9, 15, 0, 0, time.UTC),
			Status:     entity.LeadContacted,
			Tags:       []string{"Enterprise"},
			TotalSpend: 4500,
		},
	}
	s.Bookings = []entity.Booking{
		{
			ID: "b-1", ClientName: "Sara Tadesse", ClientEmail: "sara@fintech.et",
			ServiceID: "cybersecurity", ServiceName: "Cybersecurity & Compliance",
			Date: "2025-10-20", Time: "10:00", Status: entity.BookingConfirmed, Amount: 4500,
			CreatedAt: time.Date(2025, 10, 9, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "b-2", ClientName: "Abebe Bikila", ClientEmail: "abebe@marathon.et",
			ServiceID: "custom-software", ServiceName: "Custom Software Development",
			Date: "2025-10-22", Time: "14:30", Status: entity.BookingPending, Amount: 12000,
			CreatedAt: time.Date(2025, 10, 10, 15, 0, 0, 0, time.UTC),
		},
		{
			ID: "b-3", ClientName: "Hana Girma", ClientEmail: "hana@addisgov.et",
			ServiceID: "consulting", ServiceName: "Consulting & Digital Strategy",
			Date: "2025-09-30", Time: "09:00", Status: entity.BookingCancelled, Amount: 800,
			CreatedAt: time.Date(2025, 9, 25, 8, 0, 0, 0, time.UTC),
		},
	}
	return s
}

func seedServices() []entity.Service {
	return []entity.Service{
		{
			ID:        "custom-software",
			Title:     "Custom Software Development",
			ShortDesc: "Tailored systems built for your exact needs.",
			FullDesc:  "Built to fit your workflow, not the other way around. We engineer proprietary solutions that provide competitive advantages.",
			Features: []string{
				"Web & enterprise applications",
				"SaaS platforms & internal tools",
				"Legacy system modernization",
				"Scalable, secure system architectures",
			},
			Icon:     "code",
			Category: "Engineering",
		},
		{
			ID:        "web-mobile",
			Title:     "Web & Mobile App Development",
			ShortDesc: "High-performance digital experiences.",
			FullDesc:  "Fast, responsive, and built for real users. We bridge the gap between complex functionality and seamless mobile accessibility.",
			Features: []string{
				"Business & corporate websites",
				"Mobile apps (Android, iOS, cross-platform)",
				"Progressive Web Apps (PWA)",
				"App deployment & store publishing",
			},
			Icon:     "smartphone",
			Category: "Experience",
		},
		{
			ID:        "cybersecurity",
			Title:     "Cybersecurity & Compliance",
			ShortDesc: "Security audits and hardening for critical systems.",
			FullDesc:  "Penetration testing, secure API design and compliance reviews for enterprise and government platforms.",
			Features: []string{
				"Security audits & penetration testing",
				"Identity & access management",
				"Compliance readiness",
			},
			Icon:     "shield-check",
			Category: "Infrastructure",
		},
		{
			ID:        "consulting",
			Title:     "Consulting & Digital Strategy",
			ShortDesc: "Roadmaps that turn ideas into systems.",
			FullDesc:  "Discovery workshops, architecture reviews and digital transformation roadmaps for growing organisations.",
			Features: []string{
				"Technical due diligence",
				"Architecture reviews",
				"Digital transformation roadmaps",
			},
			Icon:     "lightbulb",
			Category: "Design",
		},
	}
}

func seedPosts() []entity.BlogPost {
	return []entity.BlogPost{
		{
			Slug:     "architecture-of-resilience",
			Title:    "The Architecture of Resilience: Building for Millions",
			Excerpt:  "Explore how we design systems that survive massive traffic spikes without compromising on latency or security.",
			Content:  "Building digital infrastructure in Ethiopia presents unique challenges, from intermittent connectivity to rapid urban growth.\nWe leverage distributed edge computing to ensure low latency even in remote areas, and every component scales independently.",
			Date:     "Oct 12, 2025",
			Category: "Engineering",
			Image:    "https://images.unsplash.com/photo-1451187580459-43490279c0fa?q=80&w=1000&auto=format&fit=crop",
			Author:   "Dawit Amare",
			ReadTime: "8 min read",
		},
		{
			Slug:     "why-startups-fail-at-scaling",
			Title:    "Why Startups Fail at Scaling (And How to Avoid It)",
			Excerpt:  "Scaling isn't just about more servers. It's about data integrity, automated testing, and team culture.",
			Content:  "The transition from a prototype to a production-grade system is where most startups stumble.\nBy establishing engineering standards early, startups can grow from 1,000 to 1,000,000 users seamlessly.",
			Date:     "Sep 28, 2025",
			Category: "Growth",
			Image:    "https://images.unsplash.com/photo-1519389950473-47ba0277781c?q=80&w=1000&auto=format&fit=crop",
			Author:   "Sara Kebede",
			ReadTime: "5 min read",
		},
		{
			Slug:     "digital-transformation-public-sector",
			Title:    "Digital Transformation in the Public Sector",
			Excerpt:  "Bridging the gap between legacy infrastructure and modern citizen expectations through strategic engineering.",
			Content:  "Citizens today expect government services to be as fast and intuitive as their favorite private-sector apps.\nWe create middleware that connects modern web portals to existing institutional databases.",
			Date:     "Sep 15, 2025",
			Category: "Government",
			Image:    "https://images.unsplash.com/photo-1526628953301-3e589a6a8b74?q=80&w=1000&auto=format&fit=crop",
			Author:   "Elias Tesfaye",
			ReadTime: "12 min read",
		},
	}
}

// IDs estáveis entre reinícios, derivados do autor só na carga inicial.
func seedTestimonial(quote, author, role string) entity.Testimonial {
	return entity.Testimonial{
		ID:     uuid.NewSHA1(uuid.NameSpaceURL, []byte("testimonial:"+author)).String(),
		Quote:  quote,
		Author: author,
		Role:   role,
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + author,
	}
}

func seedTestimonials() []entity.Testimonial {
	return []entity.Testimonial{
		seedTestimonial("Excellent product, durable, intuitive, and exactly what I needed.", "Paityn Lipshutz", "CEO & Co-Founder at Lemonsqueezy"),
		seedTestimonial("Top-notch quality, easy to set up and performs as promised.", "Angel Lubin", "CEO & Co-Founder at Zipline"),
		seedTestimonial("Amazing product, well-built and just as advertised.", "Lincoln Stanton", "CEO & Co-Founder at Gumroad"),
		seedTestimonial("EthioCodes didn't just give us an app; they rebuilt our entire internal workflow. Efficiency is up 40% since launch.", "Felix Desta", "Gov Director, Digital Transformation"),
		seedTestimonial("Wonderful product, high quality and easy to operate.", "Corey Franci", "Operations Lead"),
		seedTestimonial("Impressive product, simple to use and exactly as promised.", "Anika Franci", "CEO & Co-Founder at Zendesk"),
		seedTestimonial("Outstanding product. The team went above and beyond to help.", "Skylar Rosser", "Product Manager at Orbit"),
		seedTestimonial("Great product, reliable, just as described.", "Chance Baptista", "CEO & Co-Founder at Linear"),
	}
}

func seedFeatures() []entity.Feature {
	return []entity.Feature{
		{Title: "Full-Stack Architecture", Description: "We engineer the entire backend, database, and API infrastructure to handle millions of requests.", Icon: "shield"},
		{Title: "Mission-Critical Scaling", Description: "Systems designed to grow with your user base.", Icon: "zap"},
		{Title: "Enterprise Automation", Description: "We automate complex workflows, reporting, and payment reconciliations.", Icon: "mouse-pointer"},
		{Title: "Government Standards", Description: "Bank-grade security and encryption protocol compliance.", Icon: "check-circle"},
		{Title: "Cross-Platform Ecosystem", Description: "Native Android, iOS, and Web platforms that sync with your central dashboard.", Icon: "smartphone"},
		{Title: "Long-Term Reliability", Description: "Ongoing maintenance, documentation, and staff training.", Icon: "clock"},
	}
}

func seedPricing() []entity.PricingPlan {
	return []entity.PricingPlan{
		{
			Name:        "Project-based Development",
			Description: "Streamline your projects with minimal risk, ensuring top-notch quality and timely, on-budget delivery.",
			CTA:         "Get in Touch",
			Icon:        "cube",
			Color:       "orange",
		},
		{
			Name:        "Dedicated Teams",
			Description: "Accelerate your projects with our expert team, combining technical prowess and management skills.",
			CTA:         "Get in Touch",
			Icon:        "network",
			Color:       "primary",
		},
	}
}

func seedFAQs() []entity.FAQ {
	return []entity.FAQ{
		{Question: "Do you only do coding?", Answer: "No. We handle discovery, architecture, UI/UX design, backend engineering, mobile development, deployment, and long-term support."},
		{Question: "How do you ensure system security?", Answer: "End-to-end encryption, secure API protocols, and regular penetration testing for all enterprise and government projects."},
		{Question: "Can you take over a failing project?", Answer: "Yes. We audit and refactor legacy systems, turning them into stable, scalable assets."},
		{Question: "What is your typical delivery timeline?", Answer: "Systems move from discovery to launch in 8 to 16 weeks, with incremental milestones every 14 days."},
	}
}
