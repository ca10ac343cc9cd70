package seeder

type skillSeed struct {
	Name     string
	Category string
}

type resourceSeed struct {
	Skill      string
	Title      string
	Type       string
	Provider   string
	Link       string
	Difficulty int
}

type requirementSeed struct {
	Skill  string
	Level  int
	Weight float64
}

type roleSeed struct {
	Title        string
	Domain       string
	Description  string
	Requirements []requirementSeed
}

type projectSeed struct {
	Title       string
	Description string
	Domain      string
	Difficulty  int
	Repo        string
	Skills      []string
}

var skillSeeds = []skillSeed{
	{Name: "Python", Category: "Programming Language"},
	{Name: "Go", Category: "Programming Language"},
	{Name: "JavaScript", Category: "Programming Language"},
	{Name: "SQL", Category: "Data"},
	{Name: "Data Visualization", Category: "Data"},
	{Name: "Machine Learning", Category: "Data"},
	{Name: "Statistics", Category: "Data"},
	{Name: "HL7 FHIR", Category: "Healthcare"},
	{Name: "IoT Protocols", Category: "Hardware"},
	{Name: "GIS", Category: "Geospatial"},
	{Name: "Docker", Category: "DevOps"},
	{Name: "REST APIs", Category: "Backend"},
	{Name: "React", Category: "Frontend"},
}

var resourceSeeds = []resourceSeed{
	{Skill: "Python", Title: "Python for Everybody", Type: "Course", Provider: "Coursera", Link: "https://www.coursera.org/specializations/python", Difficulty: 1},
	{Skill: "SQL", Title: "SQL Tutorial", Type: "Tutorial", Provider: "Mode", Link: "https://mode.com/sql-tutorial", Difficulty: 1},
	{Skill: "SQL", Title: "Advanced SQL for Data Analysis", Type: "Course", Provider: "Kaggle", Link: "https://www.kaggle.com/learn/advanced-sql", Difficulty: 3},
	{Skill: "Data Visualization", Title: "Data Visualization with Python", Type: "Course", Provider: "freeCodeCamp", Link: "https://www.freecodecamp.org/learn/data-analysis-with-python", Difficulty: 2},
	{Skill: "Machine Learning", Title: "Machine Learning Specialization", Type: "Course", Provider: "Coursera", Link: "https://www.coursera.org/specializations/machine-learning-introduction", Difficulty: 3},
	{Skill: "Statistics", Title: "Statistics and Probability", Type: "Course", Provider: "Khan Academy", Link: "https://www.khanacademy.org/math/statistics-probability", Difficulty: 2},
	{Skill: "HL7 FHIR", Title: "FHIR Overview", Type: "Documentation", Provider: "HL7", Link: "https://www.hl7.org/fhir/overview.html", Difficulty: 3},
	{Skill: "IoT Protocols", Title: "MQTT Essentials", Type: "Article Series", Provider: "HiveMQ", Link: "https://www.hivemq.com/mqtt-essentials", Difficulty: 2},
	{Skill: "GIS", Title: "Intro to GIS with QGIS", Type: "Tutorial", Provider: "QGIS", Difficulty: 2},
	{Skill: "Docker", Title: "Docker Getting Started", Type: "Documentation", Provider: "Docker", Link: "https://docs.docker.com/get-started", Difficulty: 1},
	{Skill: "Go", Title: "A Tour of Go", Type: "Tutorial", Provider: "go.dev", Link: "https://go.dev/tour", Difficulty: 1},
	{Skill: "REST APIs", Title: "API Design Patterns", Type: "Book", Provider: "Manning", Difficulty: 3},
	{Skill: "React", Title: "React Learn", Type: "Documentation", Provider: "react.dev", Link: "https://react.dev/learn", Difficulty: 2},
}

var roleSeeds = []roleSeed{
	{
		Title:       "Healthcare Data Analyst",
		Domain:      "Healthcare",
		Description: "Turns clinical and operational data into decisions for hospitals and clinics.",
		Requirements: []requirementSeed{
			{Skill: "SQL", Level: 4, Weight: 5.0},
			{Skill: "Python", Level: 3, Weight: 3.0},
			{Skill: "Data Visualization", Level: 3, Weight: 4.0},
			{Skill: "HL7 FHIR", Level: 2, Weight: 2.0},
			{Skill: "Statistics", Level: 3, Weight: 3.0},
		},
	},
	{
		Title:       "Agri IoT Engineer",
		Domain:      "AgriTech",
		Description: "Builds sensor networks and data pipelines for precision farming.",
		Requirements: []requirementSeed{
			{Skill: "IoT Protocols", Level: 4, Weight: 5.0},
			{Skill: "Python", Level: 3, Weight: 3.0},
			{Skill: "Go", Level: 2, Weight: 2.0},
			{Skill: "Docker", Level: 2, Weight: 2.0},
		},
	},
	{
		Title:       "Smart City Data Scientist",
		Domain:      "SmartCity",
		Description: "Models mobility, energy and sensor data for urban planning.",
		Requirements: []requirementSeed{
			{Skill: "Machine Learning", Level: 4, Weight: 5.0},
			{Skill: "Python", Level: 4, Weight: 4.0},
			{Skill: "GIS", Level: 3, Weight: 3.0},
			{Skill: "Statistics", Level: 4, Weight: 4.0},
		},
	},
	{
		Title:       "Backend Developer",
		Domain:      "SmartCity",
		Description: "Designs and operates the services behind civic platforms.",
		Requirements: []requirementSeed{
			{Skill: "Go", Level: 4, Weight: 5.0},
			{Skill: "SQL", Level: 3, Weight: 4.0},
			{Skill: "REST APIs", Level: 4, Weight: 4.0},
			{Skill: "Docker", Level: 3, Weight: 3.0},
		},
	},
}

var projectSeeds = []projectSeed{
	{
		Title:       "Hospital Readmission Dashboard",
		Description: "Analyse discharge records and chart 30-day readmission risk by ward.",
		Domain:      "Healthcare",
		Difficulty:  2,
		Repo:        "https://github.com/skillmatch-samples/readmission-dashboard",
		Skills:      []string{"SQL", "Python", "Data Visualization"},
	},
	{
		Title:       "FHIR Patient Importer",
		Description: "Parse FHIR bundles and load patients into a relational store.",
		Domain:      "Healthcare",
		Difficulty:  3,
		Repo:        "https://github.com/skillmatch-samples/fhir-importer",
		Skills:      []string{"HL7 FHIR", "Python", "SQL"},
	},
	{
		Title:       "Soil Moisture Telemetry",
		Description: "Collect MQTT readings from field sensors and expose them over an API.",
		Domain:      "AgriTech",
		Difficulty:  3,
		Repo:        "https://github.com/skillmatch-samples/soil-telemetry",
		Skills:      []string{"IoT Protocols", "Go", "Docker"},
	},
	{
		Title:       "Bike Share Demand Forecast",
		Description: "Forecast station demand from trip history and weather.",
		Domain:      "SmartCity",
		Difficulty:  4,
		Repo:        "https://github.com/skillmatch-samples/bikeshare-forecast",
		Skills:      []string{"Machine Learning", "Python", "Statistics", "GIS"},
	},
	{
		Title:       "Civic Issue Tracker API",
		Description: "A REST service for reporting potholes and broken streetlights.",
		Domain:      "SmartCity",
		Difficulty:  2,
		Repo:        "https://github.com/skillmatch-samples/civic-issues",
		Skills:      []string{"Go", "REST APIs", "SQL"},
	},
}

const demoUserEmail = "demo@skillmatch.local"

var demoUserSkills = []struct {
	Skill string
	Level int
}{
	{Skill: "Python", Level: 3},
	{Skill: "SQL", Level: 2},
	{Skill: "JavaScript", Level: 3},
	{Skill: "React", Level: 2},
}
