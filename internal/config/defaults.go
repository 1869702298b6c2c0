package config

// DefaultTemplate is the built-in worksim.yml. Rates and distributions follow
// published project-management benchmarks; department shares and team sizes
// approximate a mid-size product company.
const DefaultTemplate = `simulation:
  employees: 7500
  end_date: 2026-01-07
  horizon_days: 180
  seed: 0

llm:
  model: claude-sonnet-4-20250514
  temperature: 0.7
  max_tokens: 1000
  batch_delay_ms: 500

time:
  weekday_bias: 0.6
  weekend_avoidance: 0.85
  sprint_days: 14
  sprint_aligned_due_dates: false

departments:
  - name: Engineering
    share: 0.40
    team_size: {min: 8, max: 15}
    identifiers: [Platform, Backend, Frontend, Mobile, Infrastructure, Data, ML, Security, DevOps, QA]
    description: Responsible for building and maintaining our products
    job_titles:
      - Senior Software Engineer
      - Software Engineer
      - Staff Engineer
      - Principal Engineer
      - Engineering Manager
      - Tech Lead
      - Senior Backend Engineer
      - Senior Frontend Engineer
      - DevOps Engineer
      - Data Engineer
      - ML Engineer
      - QA Engineer
      - Security Engineer
    project_types:
      - {name: Sprint, weight: 0.60}
      - {name: Kanban, weight: 0.30}
      - {name: List, weight: 0.10}
  - name: Product
    share: 0.10
    team_size: {min: 5, max: 10}
    identifiers: [Core, Growth, Platform, Enterprise, Consumer]
    description: Defines product strategy and roadmap
    job_titles:
      - Product Manager
      - Senior Product Manager
      - Director of Product
      - VP of Product
      - Product Lead
      - Associate Product Manager
      - Technical Product Manager
      - Group Product Manager
    project_types:
      - {name: Timeline, weight: 0.50}
      - {name: List, weight: 0.30}
      - {name: Kanban, weight: 0.20}
  - name: Design
    share: 0.08
    team_size: {min: 5, max: 8}
    identifiers: [Product Design, Brand, UX Research]
    description: Creates user experiences and visual design
    job_titles:
      - Product Designer
      - Senior Product Designer
      - UX Researcher
      - Design Lead
      - Head of Design
      - Brand Designer
      - Visual Designer
      - UX Writer
      - Design Systems Designer
    project_types:
      - {name: Kanban, weight: 0.50}
      - {name: Timeline, weight: 0.30}
      - {name: List, weight: 0.20}
  - name: Marketing
    share: 0.12
    team_size: {min: 6, max: 12}
    identifiers: [Growth, Brand, Content, Demand Gen, Product Marketing]
    description: Drives customer acquisition and brand awareness
    job_titles:
      - Marketing Manager
      - Content Marketing Manager
      - Growth Marketing Manager
      - Product Marketing Manager
      - Brand Manager
      - Demand Generation Manager
      - Marketing Director
      - VP of Marketing
      - Marketing Coordinator
    project_types:
      - {name: Timeline, weight: 0.40}
      - {name: Calendar, weight: 0.30}
      - {name: List, weight: 0.30}
  - name: Sales
    share: 0.15
    team_size: {min: 8, max: 15}
    identifiers: [Enterprise, SMB, Inside Sales, Sales Ops]
    description: Acquires new customers and grows revenue
    job_titles:
      - Account Executive
      - Senior Account Executive
      - Sales Development Rep
      - Sales Manager
      - VP of Sales
      - Sales Engineer
      - Account Manager
      - Business Development Manager
      - Sales Operations Manager
    project_types:
      - {name: List, weight: 0.60}
      - {name: Kanban, weight: 0.30}
      - {name: Timeline, weight: 0.10}
  - name: Operations
    share: 0.08
    team_size: {min: 5, max: 10}
    identifiers: []
    description: Manages internal processes and operations
    job_titles:
      - Operations Manager
      - Operations Coordinator
      - Chief of Staff
      - Business Operations Manager
      - VP of Operations
      - Program Manager
      - Project Manager
      - Operations Analyst
    project_types:
      - {name: List, weight: 0.50}
      - {name: Kanban, weight: 0.40}
      - {name: Timeline, weight: 0.10}
  - name: HR
    share: 0.04
    team_size: {min: 4, max: 8}
    identifiers: []
    description: Supports employee experience and culture
    job_titles:
      - HR Manager
      - Recruiter
      - Senior Recruiter
      - People Operations Manager
      - HR Business Partner
      - Talent Acquisition Manager
      - VP of People
      - People Operations Coordinator
    project_types:
      - {name: List, weight: 0.70}
      - {name: Timeline, weight: 0.20}
      - {name: Kanban, weight: 0.10}
  - name: Finance
    share: 0.03
    team_size: {min: 3, max: 6}
    identifiers: []
    description: Manages financial planning and operations
    job_titles:
      - Financial Analyst
      - Senior Financial Analyst
      - Controller
      - CFO
      - Finance Manager
      - Accounting Manager
      - Finance Director
    project_types:
      - {name: List, weight: 0.80}
      - {name: Timeline, weight: 0.20}

user_roles:
  - {name: admin, weight: 0.05}
  - {name: member, weight: 0.85}
  - {name: limited_access, weight: 0.08}
  - {name: guest, weight: 0.02}

projects:
  per_team: {min: 3, max: 5}
  trailing_buffer_days: 30
  status_weights:
    - {name: active, weight: 0.70}
    - {name: on_hold, weight: 0.10}
    - {name: completed, weight: 0.15}
    - {name: archived, weight: 0.05}

tasks:
  per_project: {min: 15, max: 40}
  unassigned_rate: 0.15
  like_rate: 0.30

completion_rates:
  - {name: Sprint, min: 0.70, max: 0.85}
  - {name: Kanban, min: 0.60, max: 0.70}
  - {name: Timeline, min: 0.50, max: 0.65}
  - {name: List, min: 0.40, max: 0.55}
  - {name: Calendar, min: 0.65, max: 0.75}

due_date_buckets:
  - {name: within_1_week, weight: 0.25}
  - {name: within_1_month, weight: 0.40}
  - {name: within_3_months, weight: 0.20}
  - {name: no_due_date, weight: 0.10}
  - {name: overdue, weight: 0.05}

subtasks:
  rate: 0.30
  per_task: {min: 1, max: 5}

comments:
  rate: 0.45
  per_task: {min: 1, max: 8}

attachments:
  rate: 0.20
  types:
    - {mime: application/pdf, extensions: [".pdf"]}
    - {mime: image/png, extensions: [".png"]}
    - {mime: image/jpeg, extensions: [".jpg", ".jpeg"]}
    - {mime: application/vnd.openxmlformats-officedocument.wordprocessingml.document, extensions: [".docx"]}
    - {mime: application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, extensions: [".xlsx"]}
    - {mime: application/vnd.openxmlformats-officedocument.presentationml.presentation, extensions: [".pptx"]}
    - {mime: text/plain, extensions: [".txt"]}
    - {mime: application/zip, extensions: [".zip"]}

task_tags:
  rate: 0.30
  per_task: {min: 1, max: 2}

custom_fields:
  priority_rate: 0.70
  effort_rate: 0.50
  fields:
    - name: Priority
      type: enum
      options: [Critical, High, Medium, Low]
    - name: Effort
      type: enum
      options: [XS, S, M, L, XL]
    - name: Status
      type: enum
      options: [Not Started, In Progress, Blocked, In Review, Done]
    - name: Story Points
      type: number
    - name: Sprint
      type: text

tags:
  - bug
  - feature
  - enhancement
  - urgent
  - blocked
  - needs-review
  - documentation
  - technical-debt
  - customer-request
  - security
  - performance
  - ux
  - backend
  - frontend

workload:
  pareto_assignment: false
  top_fraction: 0.2
  top_mass: 0.8
`
