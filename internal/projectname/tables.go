package projectname

// Naming patterns collected from public project templates and board exports.

var quarters = []string{"1", "2", "3", "4"}

var periods = []string{
	"H1", "H2", "Q1", "Q2", "Q3", "Q4", "January", "February",
	"March", "April", "May", "June", "July", "August",
	"September", "October", "November", "December",
}

var engineeringPatterns = []string{
	"{component} {version} {work_type}",
	"Q{quarter} {component} Improvements",
	"{component} - {feature}",
	"{system} Migration",
	"{feature} Implementation",
	"Technical Debt - {area}",
	"{service} Refactoring",
	"Infrastructure - {focus}",
	"{platform} Upgrade",
	"API {version} Development",
}

var engineeringComponents = []string{
	"Authentication", "API", "Database", "Frontend", "Backend", "Mobile",
	"Infrastructure", "Analytics", "Search", "Payments", "Notifications",
	"Dashboard", "Admin Panel", "User Management", "Reporting", "Integration",
}

var engineeringFeatures = []string{
	"OAuth Integration", "Real-time Updates", "Caching Layer", "Load Balancing",
	"Error Handling", "Monitoring", "CI/CD Pipeline", "Security Audit",
	"Performance Optimization", "GraphQL API", "Microservices", "Containerization",
}

var marketingPatterns = []string{
	"Q{quarter} {campaign_type} Campaign",
	"{channel} Marketing - {period}",
	"{event} Launch Campaign",
	"{product} Go-to-Market",
	"Content Calendar - {period}",
	"{channel} Optimization",
	"Brand {initiative}",
	"{campaign} Execution",
	"{event} Event Planning",
	"Customer {program}",
}

var marketingCampaigns = []string{
	"Brand Awareness", "Lead Generation", "Product Launch", "Seasonal",
	"Holiday", "Webinar Series", "Email Marketing", "Social Media",
	"Content Marketing", "SEO", "Paid Ads", "Influencer",
}

var marketingChannels = []string{
	"Email", "Social Media", "Blog", "Video", "Podcast", "Webinar",
	"Events", "PR", "Partnerships", "Community",
}

var productPatterns = []string{
	"{feature} Development",
	"Q{quarter} Roadmap",
	"{product_area} Enhancements",
	"User Research - {focus}",
	"{feature} Beta",
	"Product Discovery - {area}",
	"{initiative} Planning",
	"Customer Feedback - {period}",
	"{feature} Specs",
	"Product Metrics - {area}",
}

var productFeatures = []string{
	"Dashboard", "Onboarding", "Mobile App", "Integrations", "Analytics",
	"Collaboration", "Notifications", "Search", "Settings", "Admin Tools",
	"Reporting", "Export", "Templates", "Workflow", "Automation",
}

var designPatterns = []string{
	"Design System {version}",
	"UX Research - {focus}",
	"{component} Redesign",
	"Visual Design - {project}",
	"UI Component Library",
	"{feature} Design Sprint",
	"Brand Guidelines {version}",
	"Accessibility Audit",
	"Mobile App Design",
	"Design QA - {period}",
}

var operationsPatterns = []string{
	"{process} Optimization",
	"Q{quarter} {department} Planning",
	"{system} Implementation",
	"{process} Documentation",
	"{area} Compliance",
	"Vendor Management - {category}",
	"{initiative} Rollout",
	"{department} Onboarding",
	"{process} Audit",
	"Cost Optimization - {area}",
}

var operationsProcesses = []string{
	"Hiring", "Onboarding", "Performance Review", "Budget Planning",
	"Procurement", "Facilities", "IT Support", "Security", "Compliance",
	"Training", "Travel", "Equipment", "Vendor", "Contract",
}

var engineeringTaskPatterns = []string{
	"Fix {bug} in {component}",
	"Implement {feature}",
	"Refactor {component}",
	"Add tests for {feature}",
	"Optimize {component} performance",
	"Update {component} documentation",
	"Migrate {component} to {tech}",
}

var marketingTaskPatterns = []string{
	"Create {asset} for {campaign}",
	"Schedule {content} posts",
	"Review {campaign} performance",
	"Design {asset}",
	"Write {content} copy",
	"Plan {event}",
}

var productTaskPatterns = []string{
	"Define requirements for {feature}",
	"Create spec for {feature}",
	"User research on {topic}",
	"Analyze {metric} data",
	"Prioritize {area} backlog",
}

var designTaskPatterns = []string{
	"Design {component} mockups",
	"Create {asset} assets",
	"Conduct usability testing for {feature}",
	"Update design system {component}",
}
