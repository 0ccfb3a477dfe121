package entity

const (
	linkUsersProblemSpaces = "https://www.joinleland.com/content/course/urn:course:68cdb3b85d53ec4ea9359d04"
	linkRequirementsUX     = "https://www.joinleland.com/content/item/urn:contentEntry:689b5d87dac66cae1ed96aae?fromName=Product+Management"
	linkDiscovery          = "https://www.joinleland.com/content/course/urn:course:68cdb6cbb1c8a7104e455eda/urn:contentEntry:68c8e577810fce6e6ae76f33"
	linkMetrics            = "https://www.joinleland.com/content/course/urn:course:68cdbe15b1c8a7104e461624/urn:contentEntry:68c8e67d8945a7a314b53ad7"
	linkStrategy           = "https://www.joinleland.com/content/course/urn:course:68cdaef05d53ec4ea9353196/urn:contentEntry:68c963cfb399bfc15f000206"
	linkPM101              = "https://www.joinleland.com/content/course/urn:course:68c9492fdf84b203d53079e7"
	linkPMOverview         = "https://www.joinleland.com/content/course/urn:course:68cdaef05d53ec4ea9353196"
)

// DefaultSections 返回内置的 PRD 章节列表（每次返回新副本，调用方可自由修改）
func DefaultSections() []SectionDescriptor {
	out := make([]SectionDescriptor, len(defaultSections))
	for i, s := range defaultSections {
		s.Links = append([]Link(nil), s.Links...)
		out[i] = s
	}
	return out
}

var defaultSections = []SectionDescriptor{
	{
		ID:          "problem",
		Title:       "Problem Statement",
		Description: "What problem are you solving? Who experiences it?",
		Placeholder: "Describe the core problem your product addresses...",
		Example: `Small business owners struggle to manage their inventory across multiple sales channels, leading to overselling, stockouts, and lost revenue. Current solutions are either too complex and expensive for SMBs or lack multi-channel integration.

Key pain points:
• Manual inventory updates across 3+ platforms take 2-3 hours daily
• 15% of orders result in overselling issues
• No real-time visibility into stock levels

Target users: Small retail businesses (5-50 employees) selling on e-commerce platforms, marketplaces, and physical stores.`,
		Links: []Link{
			{Title: "Understanding Users & Problem Spaces", URL: linkUsersProblemSpaces},
			{Title: "Requirements Gathering for UX Designers", URL: linkRequirementsUX},
			{Title: "Product Discovery and Ideation", URL: linkDiscovery},
		},
	},
	{
		ID:          "goals",
		Title:       "Goals & Success Metrics",
		Description: "What does success look like?",
		Placeholder: "Define clear, measurable goals and KPIs...",
		Example: `Business Goals:
• Reduce inventory management time by 70%
• Eliminate overselling incidents within 3 months
• Increase customer retention by 25%

Success Metrics:
• Daily Active Users (DAU): 1,000 within 6 months
• Inventory sync accuracy: 99.5%
• Time to sync across channels: <30 seconds
• Customer satisfaction (CSAT): >4.5/5
• Churn rate: <5% monthly`,
		Links: []Link{
			{Title: "Metrics, Analytics, and Decision Making", URL: linkMetrics},
			{Title: "Product Thinking & Strategy", URL: linkStrategy},
		},
	},
	{
		ID:          "user-stories",
		Title:       "User Stories",
		Description: "How will users interact with this feature?",
		Placeholder: "As a [user], I want to [action] so that [benefit]...",
		Example: `As a store owner, I want to:
• Connect all my sales channels (Shopify, Amazon, eBay) in one dashboard so that I can view inventory in real-time
• Receive alerts when stock levels fall below threshold so that I can reorder before stockouts
• Automatically sync inventory changes across all platforms so that I don't have to manually update each channel

As a warehouse manager, I want to:
• Scan barcodes to update inventory so that changes reflect immediately across all channels
• View which products are selling fastest so that I can prioritize restocking`,
		Links: []Link{
			{Title: "Understanding Users & Problem Spaces", URL: linkUsersProblemSpaces},
			{Title: "Requirements Gathering for UX Designers", URL: linkRequirementsUX},
			{Title: "Product Discovery and Ideation", URL: linkDiscovery},
		},
	},
	{
		ID:          "requirements",
		Title:       "Requirements",
		Description: "What needs to be built?",
		Placeholder: "List functional and non-functional requirements...",
		Example: `Functional Requirements:
• Multi-channel integration (Shopify, WooCommerce, Amazon, eBay)
• Real-time inventory synchronization (<30 sec delay)
• Low stock alerts (customizable thresholds)
• Barcode scanning via mobile app
• Inventory history and audit logs
• Bulk import/export via CSV

Non-Functional Requirements:
• 99.9% uptime
• Support 10,000+ SKUs per account
• Mobile-responsive dashboard
• GDPR compliant data handling
• API rate limiting: 100 requests/min`,
		Links: []Link{
			{Title: "Product Management 101", URL: linkPM101},
			{Title: "Requirements Gathering for UX Designers", URL: linkRequirementsUX},
		},
	},
	{
		ID:          "scope",
		Title:       "Scope & Timeline",
		Description: "What's in and out? When will it ship?",
		Placeholder: "Define what's included in V1 and future iterations...",
		Example: `V1 Scope (Q2 2024):
In Scope:
• Integration with Shopify and WooCommerce
• Real-time inventory sync
• Low stock email alerts
• Web dashboard with basic reporting
• CSV import/export

Out of Scope:
• Amazon/eBay integration (V2)
• Mobile app (V2)
• Advanced analytics and forecasting (V3)
• Multi-warehouse support (V3)

Timeline:
• Design & Planning: 2 weeks
• Development: 8 weeks
• Testing & QA: 2 weeks
• Beta Launch: Week 12`,
		Links: []Link{
			{Title: "Overview of Product Management", URL: linkPMOverview},
			{Title: "Product Thinking & Strategy", URL: linkStrategy},
			{Title: "Product Discovery and Ideation", URL: linkDiscovery},
		},
	},
}
