package names

import "github.com/ocscribes/shift-sync/backend/internal/domain"

// DefaultLegend returns the built-in standardization table used to seed a
// fresh deployment until operators curate the legend file. Callers must
// not mutate the returned maps.
func DefaultLegend() domain.NameLegend {
	return defaultLegend()
}

// defaultLegend seeds a fresh deployment until operators curate the file.
func defaultLegend() domain.NameLegend {
	return domain.NameLegend{
		Physicians: map[string]string{
			"ABDELKERIM":   "Dr. Abdelkerim",
			"ALCID":        "Dr. Alcid",
			"ANDERSON":     "Dr. Anderson",
			"ARAFA":        "Dr. Arafa",
			"ASSAF":        "Dr. Assaf",
			"AYALIN":       "Dr. Ayalin",
			"BANSIL":       "Dr. Bansil",
			"BRINDIS":      "Dr. Brindis",
			"DICKSON":      "Dr. Dickson",
			"DOERING":      "Dr. Doering",
			"ENGLAND":      "Dr. England",
			"FIERRO":       "Dr. Fierro",
			"GOLD":         "Dr. Gold",
			"GOMEZ":        "Dr. Gomez",
			"GROMIS":       "Dr. Gromis",
			"HEDLAND":      "Dr. Hedland",
			"HEYMING":      "Dr. Heyming",
			"HUGHES":       "Dr. Hughes",
			"JARRETT":      "Dr. Jarrett",
			"JAYAMAHA":     "Dr. Jayamaha",
			"JONES":        "Dr. Jones",
			"KEAR":         "Dr. Kear",
			"KIM":          "Dr. Kim",
			"LAPLANT":      "Dr. Laplant",
			"LASALA":       "Dr. Lasala",
			"LEE":          "Dr. Lee",
			"LI":           "Dr. Li",
			"LUU":          "Dr. Luu",
			"MEHTA":        "Dr. Mehta",
			"MERJANIAN":    "Dr. Merjanian",
			"MIKHAIL":      "Dr. Mikhail",
			"MINASYAN":     "Dr. Minasyan",
			"MIRCHANDANI":  "Dr. Mirchandani",
			"MITTAL":       "Dr. Mittal",
			"MOLNAR":       "Dr. Molnar",
			"MULLARKY":     "Dr. Mullarky",
			"MURPHY":       "Dr. Murphy",
			"NAVARRO":      "Dr. Navarro",
			"ORANTES":      "Dr. Orantes",
			"PAUL":         "Dr. Paul",
			"PIROUTEK":     "Dr. Piroutek",
			"POWELL":       "Dr. Powell",
			"RIVERS":       "Dr. Rivers",
			"ROGAN":        "Dr. Rogan",
			"RUDOLPH":      "Dr. Rudolph",
			"RUIZ":         "Dr. Ruiz",
			"SAINTGEORGES": "Dr. Saintgeorges",
			"SHIEH":        "Dr. Shieh",
			"SHNITER":      "Dr. Shniter",
			"SIEMBIEDA":    "Dr. Siembieda",
			"SINGH":        "Dr. Singh",
			"SMITH":        "Dr. Smith",
			"STARR":        "Dr. Starr",
			"VALENTE":      "Dr. Valente",
			"YAO":          "Dr. Yao",
			"YUAN":         "Dr. Yuan",
		},
		MLPs: map[string]string{
			"DEOGRACIA":   "Reagan Deogracia",
			"DHALIWAL":    "Namneet Dhaliwal",
			"FURTEK":      "Marryanne Furtek",
			"GERMANN":     "Quentin Germann",
			"GO":          "Kyungsoo Go (Korrin)",
			"GREEN":       "Geoffrey Green (Geoff)",
			"GYORE":       "Victoria Gyore",
			"JIVAN":       "Elizabeth Jivan (Liz)",
			"KAMACHI":     "Roland Kamachi",
			"M. CAMPBELL": "M. Campbell",
			"MARONY":      "Gregory Marony (Greg)",
			"NISHIOKA":    "John Nishioka (Nish)",
			"REID":        "Craig Reid",
			"REPPER":      "Danielle Chater Lea (Dani)",
			"SHAHINYAN":   "Liana Shahinyan",
			"VAFAEIAN":    "Rojin Vafaeian",
			"ZWICK":       "Tamar Zwick",
		},
	}
}
