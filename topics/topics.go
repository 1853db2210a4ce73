package topics

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// Category groups related topics under a label. Curated selection draws a
// category first so the rotation covers the whole catalog evenly.
type Category struct {
	Name   string
	Topics []string
}

// Catalog is the fixed menu of AI, future-tech and digital-trend topics.
var Catalog = []Category{
	{
		Name: "AI Fundamentals & Development",
		Topics: []string{
			"Machine learning fundamentals", "Neural network architectures", "Natural language processing",
			"Computer vision advancements", "Reinforcement learning techniques", "AI ethics frameworks",
			"Deep learning innovations", "AI research frontiers", "Generative AI evolution",
			"Multimodal AI systems", "AI alignment strategies", "AGI development pathways",
			"Foundation model architectures", "AI interpretability methods", "Explainable AI techniques",
			"AI augmentation approaches", "Human-AI collaboration", "Federated learning advances",
			"AI training methodologies", "Transformer architecture innovations",
		},
	},
	{
		Name: "Future Computing & Infrastructure",
		Topics: []string{
			"Quantum computing advances", "Cloud computing evolution", "Edge computing applications",
			"Neuromorphic computing", "Blockchain technologies", "Decentralized networks", "Web3 infrastructure",
			"Green computing innovations", "High-performance computing", "Serverless architectures",
			"Spatial computing systems", "Advanced cybersecurity frameworks", "Distributed systems design",
			"Mesh network technologies", "6G communication systems", "Computing sustainability",
			"Infrastructure optimization", "Computational efficiency", "Exascale computing challenges",
			"Zero-trust architectures",
		},
	},
	{
		Name: "Digital Transformation & Business",
		Topics: []string{
			"Industry 4.0 implementation", "Digital twin technology", "Business AI integration",
			"IoT enterprise solutions", "RPA and business automation", "Digital innovation strategies",
			"API economy evolution", "Platform business models", "Hyper-personalization techniques",
			"Data-driven decision making", "Digital marketing transformation", "Customer experience technologies",
			"Digital employee experience", "Virtual collaboration tools", "Enterprise knowledge systems",
			"Organizational AI adoption", "Digital leadership development", "Change management for technology",
			"Digital ecosystem building", "Technology governance frameworks",
		},
	},
	{
		Name: "Emerging Technology Trends",
		Topics: []string{
			"Extended reality (XR) evolution", "Metaverse development", "Spatial computing applications",
			"Brain-computer interfaces", "Synthetic biology advances", "Nanotechnology innovations",
			"Advanced robotics systems", "Autonomous vehicle technologies", "Smart city infrastructures",
			"Sustainable technology solutions", "Space technology commercialization", "Precision medicine technologies",
			"Advanced materials science", "Biotechnology convergence", "Energy storage breakthroughs",
			"Sensory augmentation devices", "Human enhancement technologies", "Carbon capture innovations",
			"Vertical farming technologies", "Alternative protein technologies",
		},
	},
	{
		Name: "Data Science & Analytics",
		Topics: []string{
			"Big data architectures", "Data engineering pipelines", "Predictive analytics models",
			"Real-time analytics systems", "Data visualization techniques", "Natural language querying",
			"Automated machine learning", "Data mesh architecture", "Decision intelligence frameworks",
			"Synthetic data generation", "Data governance strategies", "Time-series analysis methods",
			"Geospatial analytics", "Graph database applications", "Behavioral analytics systems",
			"Prescriptive analytics models", "Analytics democratization", "MLOps best practices",
			"Data storytelling techniques", "Knowledge graph applications",
		},
	},
	{
		Name: "Digital Society & Future Work",
		Topics: []string{
			"Remote work evolution", "Digital nomad infrastructure", "Future skills development",
			"AI-human workforce integration", "Digital inclusion strategies", "Technology education transformation",
			"Universal basic income models", "Platform cooperative systems", "Digital public goods",
			"Creator economy platforms", "Digital identity frameworks", "Online community building",
			"Digital citizenship development", "Virtual learning environments", "Work automation adaptation",
			"Knowledge worker augmentation", "Gig economy platforms", "Digital wellness practices",
			"Technological unemployment solutions", "Human-centered technology design",
		},
	},
	{
		Name: "Immersive Technologies",
		Topics: []string{
			"Virtual reality innovations", "Augmented reality platforms", "Mixed reality development",
			"Spatial audio technologies", "Haptic feedback systems", "Volumetric capture methods",
			"Digital twin environments", "Immersive storytelling techniques", "Metaverse ecosystems",
			"Avatar technology development", "Social VR platforms", "Extended reality interfaces",
			"Immersive learning environments", "Virtual production techniques",
			"Augmented workplace solutions", "Immersive collaboration tools", "Digital fashion innovations",
			"Virtual architecture design", "Synthetic media creation",
		},
	},
	{
		Name: "Digital Ethics & Security",
		Topics: []string{
			"Algorithmic bias mitigation", "Digital privacy protection",
			"Cybersecurity resilience", "Ethical data collection", "Digital rights frameworks",
			"Technology governance models", "Misinformation countermeasures", "Quantum cryptography",
			"Zero-knowledge protocols", "Secure multiparty computation", "Ethical design practices",
			"Trust frameworks for technology", "Digital well-being strategies",
			"Data sovereignty principles", "Responsible innovation frameworks", "Technology impact assessment",
			"Digital inclusion practices", "Sustainable technology development",
		},
	},
	{
		Name: "Internet Evolution & Networks",
		Topics: []string{
			"Web3 infrastructure development", "Decentralized web protocols", "IoT network architectures",
			"5G & 6G applications", "Mesh network innovations", "Network virtualization",
			"Low-orbit satellite networks", "Edge intelligence systems", "Distributed ledger technologies",
			"Interoperability frameworks", "Protocol innovation", "Content delivery evolution",
			"Semantic web technologies", "Ambient connectivity", "Machine-to-machine communication",
			"Network security architectures", "Digital infrastructure resilience", "Information discovery systems",
			"Personal area networks", "Ultra-wideband applications",
		},
	},
	{
		Name: "Human-Tech Interaction",
		Topics: []string{
			"Conversational interface design", "Ambient computing systems", "Gesture recognition technologies",
			"Voice computing advances", "Affective computing methods",
			"Wearable technology evolution", "Ambient intelligence environments", "Human-centered AI design",
			"Digital twin interfaces", "Multimodal interaction systems", "Adaptive interfaces",
			"Spatial computing interaction", "Zero UI approaches", "Human augmentation interfaces",
			"Smart environment interaction", "Inclusive design methodologies", "Cognitive load optimization",
			"Tangible computing interfaces", "Multisensory digital experiences",
		},
	},
	{
		Name: "Extra Technology Trends",
		Topics: []string{
			"Digital sustainability practices", "Synthetic media evolution", "Low-code/no-code platforms",
			"FinTech infrastructure innovations", "Circular economy technologies", "Smart contract applications",
			"Regenerative technology approaches", "Computational creativity", "Personalized manufacturing",
			"Open source infrastructure", "Digital commons development", "Cross-reality systems",
			"Biodigital convergence", "Autonomous systems governance", "Technology sovereignty frameworks",
		},
	},
}

// All returns every topic across all categories, in catalog order.
func All() []string {
	var out []string
	for _, c := range Catalog {
		out = append(out, c.Topics...)
	}
	return out
}

// Random picks a curated topic: a uniform category, then a uniform topic
// within it.
func Random() string {
	c := Catalog[rand.Intn(len(Catalog))]
	return c.Topics[rand.Intn(len(c.Topics))]
}

// FreeRandom picks a topic uniformly from the whole catalog, ignoring
// category grouping.
func FreeRandom() string {
	all := All()
	return all[rand.Intn(len(all))]
}

// RandomTopics returns min(n, catalog size) distinct topics drawn from
// the full catalog.
func RandomTopics(n int) []string {
	all := All()
	if n > len(all) {
		n = len(all)
	}
	perm := rand.Perm(len(all))
	out := make([]string, 0, n)
	for _, i := range perm[:n] {
		out = append(out, all[i])
	}
	return out
}

// ChooseInteractive shows a short menu of suggestions and reads the user's
// choice. Invalid input never blocks the flow: anything unparseable falls
// back to a curated-random pick.
func ChooseInteractive(in io.Reader, out io.Writer) string {
	suggestions := RandomTopics(10)

	fmt.Fprintln(out, "\nChoose a topic or let the system pick one for you!")
	fmt.Fprintln(out, "\nRandom topic suggestions:")
	for i, t := range suggestions {
		fmt.Fprintf(out, "%d. %s\n", i+1, t)
	}
	fmt.Fprintf(out, "\n0. Random pick from the full catalog (%d topics)\n", len(All()))
	fmt.Fprintln(out, "or type 'custom' to enter your own topic")
	fmt.Fprintf(out, "\nEnter your choice (0-%d or 'custom'): ", len(suggestions))

	reader := bufio.NewReader(in)
	line, _ := reader.ReadString('\n')
	choice := strings.TrimSpace(line)

	if strings.EqualFold(choice, "custom") {
		fmt.Fprint(out, "Enter your custom topic: ")
		custom, _ := reader.ReadString('\n')
		if custom = strings.TrimSpace(custom); custom != "" {
			return custom
		}
		return Random()
	}

	if n, err := strconv.Atoi(choice); err == nil {
		if n == 0 {
			return FreeRandom()
		}
		if n >= 1 && n <= len(suggestions) {
			return suggestions[n-1]
		}
	}

	fmt.Fprintln(out, "Invalid choice - selecting a random topic")
	return Random()
}
