package content

// Storage keys used in the client-local key/value store.
const (
	StorageKey     = "folio_content"
	UserStorageKey = "folio_user"
)

// Default returns a fresh copy of the compiled-in default document. It seeds a
// first run and backfills every field missing from persisted state.
func Default() Document {
	return Document{
		Hero: Hero{
			Greeting:    "Welcome to my world",
			Headline:    "I'm Alex Chen",
			Subheadline: "A passionate creator building the future of the web.",
		},
		About: Profile{
			Name:      "Alex Chen",
			Roles:     []string{"Full Stack Developer", "UI/UX Designer", "AI Engineer", "Creative Coder"},
			Bio:       "I am a dedicated developer with a knack for creating immersive digital experiences. My journey began with a curiosity for how things work on the web, and it has evolved into a career where I blend art with engineering. I specialize in React, WebGL, and Generative AI.",
			AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?fit=crop&w=400&h=400",
			Email:     "alex@neonfolio.com",
			Phone:     "+1 (555) 123-4567",
			Address:   "San Francisco, CA",
			Skills:    []string{"React", "TypeScript", "Node.js", "Three.js", "Python", "TailwindCSS", "PostgreSQL", "AWS"},
			Socials: Socials{
				GitHub:   "https://github.com",
				Twitter:  "https://twitter.com",
				LinkedIn: "https://linkedin.com",
			},
		},
		Education: []EducationItem{
			{
				ID:          "1",
				School:      "Stanford University",
				Degree:      "Master of Computer Science",
				Year:        "2020 - 2022",
				Description: "Specialized in Artificial Intelligence and Human-Computer Interaction. Graduated with Honors.",
			},
			{
				ID:          "2",
				School:      "University of California, Berkeley",
				Degree:      "B.S. Electrical Engineering & CS",
				Year:        "2016 - 2020",
				Description: "Core curriculum in algorithms, systems, and software engineering. President of the Web Design Club.",
			},
		},
		Projects: []Project{
			{
				ID:          "1",
				Title:       "Neon Nexus",
				Description: "A cyberpunk-inspired e-commerce dashboard with real-time data visualization.",
				ImageURL:    "https://picsum.photos/600/400?random=1",
				Tags:        []string{"React", "Three.js", "Tailwind"},
				Link:        "#",
			},
			{
				ID:          "2",
				Title:       "Gemini Vision",
				Description: "AI-powered image analysis tool using Google's latest multimodal models.",
				ImageURL:    "https://picsum.photos/600/400?random=2",
				Tags:        []string{"TypeScript", "Gemini API", "Vite"},
				Link:        "#",
			},
			{
				ID:          "3",
				Title:       "Sonic Wave",
				Description: "Browser-based audio synthesizer with WebAudio API and canvas visualizations.",
				ImageURL:    "https://picsum.photos/600/400?random=3",
				Tags:        []string{"WebAudio", "Canvas", "React"},
				Link:        "#",
			},
			{
				ID:          "4",
				Title:       "Crypto Pulse",
				Description: "DeFi portfolio tracker with real-time price websockets and glassmorphism UI.",
				ImageURL:    "https://picsum.photos/600/400?random=4",
				Tags:        []string{"D3.js", "WebSocket", "Tailwind"},
				Link:        "#",
			},
		},
		UI: UIConfig{
			Nav: NavLabels{
				Brand:       "NEON",
				BrandAccent: ".FOLIO",
				ItemAbout:   "About",
				ItemEdu:     "Education",
				ItemProj:    "Projects",
				ItemContact: "Contact",
			},
			Hero: HeroLabels{
				RolePrefix:   "I am a",
				BtnPrimary:   "Explore My Work",
				BtnSecondary: "More About Me",
			},
			SectionTitles: SectionTitles{
				About:     "About Me",
				Education: "Education",
				Projects:  "Featured Projects",
				Contact:   "Let's Build Something Amazing",
			},
			Contact: ContactConfig{
				Description: "Have a project in mind or just want to say hi? I'm always open to discussing new ideas.",
				BtnText:     "Get in Touch",
				Link:        "",
			},
			Chat: ChatConfig{
				Title:          "GEMINI ASSISTANT",
				WelcomeMessage: "Hi! I'm Alex Chen's AI assistant. Ask me anything about their work!",
				Placeholder:    "Ask about projects...",
			},
			Background: BackgroundConfig{
				Type:           BackgroundDefault,
				Value:          "",
				OverlayOpacity: 0.7,
			},
			Theme: ThemeConfig{
				Primary:    "#A855F7",
				Secondary:  "#EC4899",
				Accent:     "#06B6D4",
				Background: "#030014",
				Surface:    "#0F172A",
				Style:      StyleNeon,
			},
			Footer: "© 2024 NeonFolio. Built with React, Tailwind & Gemini API.",
		},
	}
}
