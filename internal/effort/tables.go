package effort

// Complexity keyword tables for deliverable classification. Matching is
// case-insensitive substring containment against the deliverable phrase.
// Tables are data consumed by one classification function; first matching
// tier wins, checked from very-complex down to simple.

var simpleKeywords = []string{
	"login", "signup", "form", "page", "button", "contact",
	"about", "landing", "static", "simple", "social",
}

var mediumKeywords = []string{
	"payment", "integration", "api", "search", "filter",
	"cart", "checkout", "authentication", "notification",
	"email", "upload", "download", "profile",
}

var complexKeywords = []string{
	"dashboard", "admin", "analytics", "reporting", "real-time",
	"chat", "video", " ai ", "machine learning", "recommendation",
	"inventory", "cms", "management system", "automation",
	"erp", "crm", "enterprise", "sap", "oracle",
	"inventory management", "accounting", "hr system", "payroll",
	"compliance", "hipaa", "gdpr", "sox", "pci",
	"multi-tenant", "multi-currency", "multi-language",
	"warehouse", "logistics", "supply chain",
	"fraud detection", "risk management",
	"migration", "legacy", "modernization", "refactor",
	"cloud architecture", "microservices", "infrastructure",
}

// systemWords promote a phrase with at least one complex match to the
// very-complex tier.
var systemWords = []string{"system", "platform"}

// mvpKeywords in the raw user text downgrade very-complex to complex and
// complex to medium before summing.
var mvpKeywords = []string{"mvp", "basic", "simple", "startup", "early-stage", "minimal"}

// typeMultiplier maps a project-type substring to its base factor.
// Ordered: first match wins, mirroring how overlapping categories such as
// "mobile app" resolve.
type typeMultiplier struct {
	substr string
	factor float64
}

var typeMultipliers = []typeMultiplier{
	{"e-commerce", 1.2},
	{"ecommerce", 1.2},
	{"saas", 1.3},
	{"mobile", 1.1},
	{"app", 1.1},
	{"website", 0.8},
	{"custom", 1.0},
}

// contextFactor is applied once when any of its keywords appears in the raw
// user text. Factors stack multiplicatively and independently, with no cap.
type contextFactor struct {
	keywords []string
	factor   float64
}

var contextFactors = []contextFactor{
	{[]string{"enterprise"}, 1.3},
	{[]string{"compliance", "hipaa", "gdpr", "sox", "pci"}, 1.2},
	{[]string{"migration", "legacy"}, 1.4},
	{[]string{"multi-country", "international"}, 1.2},
}
