package seeder

// Defaults is the full seed set in dependency order.
func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		ResourcesSeeder{},
		RolesSeeder{},
		ProjectsSeeder{},
		DemoUserSeeder{},
	}
}
