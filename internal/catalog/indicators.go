package catalog

import "github.com/rotisserie/eris"

// Indicators are the secondary-signal pattern families used by constraint
// repair. They are broader than the classification patterns on purpose: the
// repairer needs a second opinion that is independent of the rule list that
// produced the conflict in the first place.
type Indicators struct {
	PreColumbian []Rule
	Ancient      []Rule
	Medieval     []Rule
	UnitedStates []Rule
	LatinAmerica []Rule

	// AncientRegions maps ancient keyword families to substitute regions,
	// consulted in order when a wrongly-assigned region is dropped from an
	// ancient-world question. The last entry is the fallback.
	AncientRegions []AncientRegion
}

// AncientRegion pairs a substitute region label with the keyword family that
// selects it.
type AncientRegion struct {
	Region string
	Rules  []Rule
}

func newIndicators() (*Indicators, error) {
	ind := &Indicators{}

	families := []struct {
		name     string
		patterns []string
		dst      *[]Rule
	}{
		{"pre-columbian", preColumbianIndicators, &ind.PreColumbian},
		{"ancient", ancientIndicators, &ind.Ancient},
		{"medieval", medievalIndicators, &ind.Medieval},
		{"united-states", usIndicators, &ind.UnitedStates},
		{"latin-america", latinAmericaIndicators, &ind.LatinAmerica},
	}
	for _, f := range families {
		for _, p := range f.patterns {
			rule, err := compileRule(f.name, p)
			if err != nil {
				return nil, eris.Wrapf(err, "catalog: indicator family %s", f.name)
			}
			*f.dst = append(*f.dst, rule)
		}
	}

	for _, ar := range ancientRegionFamilies {
		entry := AncientRegion{Region: ar.region}
		for _, p := range ar.patterns {
			rule, err := compileRule(ar.region, p)
			if err != nil {
				return nil, eris.Wrapf(err, "catalog: ancient-region family %s", ar.region)
			}
			entry.Rules = append(entry.Rules, rule)
		}
		ind.AncientRegions = append(ind.AncientRegions, entry)
	}

	return ind, nil
}

var preColumbianIndicators = []string{
	`\b(Aztec|Mexica|Nahua|Nahuatl)\b`,
	`\b(Maya|Mayan|Yucatan)\b`,
	`\b(Inca|Incan|Quechua)\b`,
	`\b(Olmec|Toltec|Zapotec|Mixtec)\b`,
	`\b(Tenochtitlan|Teotihuacan|Chichen Itza|Machu Picchu|Cusco|Cuzco)\b`,
	`\b(Montezuma|Moctezuma|Atahualpa|Pachacuti)\b`,
	`\b(Popol Vuh|quipu|chinampa)\b`,
	`\b(mesoamerican|pre-columbian|pre-conquest)\b`,
	`\b(Cholula|Tlaxcala|Texcoco)\b`,
	`\b(Triple Alliance|Flower War)\b`,
	`\b(Popocatep|Iztaccihuatl)\b`,
}

var ancientIndicators = []string{
	// Figures
	`\b(Julius Caesar|Caesar Augustus|Augustus|Octavian|Brutus|Cassius|Mark Antony)\b`,
	`\b(Alexander the Great|Philip of Macedon|Socrates|Plato|Aristotle|Pericles|Themistocles)\b`,
	`\b(Hannibal|Scipio|Cato|Cicero|Nero|Caligula|Tiberius|Trajan|Hadrian|Marcus Aurelius)\b`,
	`\b(Vercingetorix|Commius|Boudicca)\b`,
	`\b(Pharaoh|Ramses|Ramesses|Tutankhamun|Cleopatra|Ptolemy|Nefertiti|Akhenaten)\b`,
	`\b(Xerxes|Darius|Cyrus the Great|Persian Empire)\b`,
	`\b(Hammurabi|Nebuchadnezzar|Gilgamesh|Sargon)\b`,
	`\b(Confucius|Qin Shi Huang|Han Dynasty|Zhou Dynasty)\b`,
	`\b(Ashoka|Chandragupta|Maurya)\b`,
	// Places and civilizations
	`\b(Roman Empire|Roman Republic|SPQR)\b`,
	`\b(Ancient Greece|Ancient Rome|Ancient Egypt|Ancient Persia|Ancient China|Ancient India)\b`,
	`\b(Sparta|Spartan|Athens|Athenian|Macedon|Macedonian)\b`,
	`\b(Carthage|Carthaginian|Phoenicia|Phoenician)\b`,
	`\b(Mesopotamia|Babylon|Babylonian|Assyria|Assyrian|Sumer|Sumerian)\b`,
	`\b(Byzantine|Byzantium|Constantinople)\b`,
	// Events and battles
	`\b(Punic War|Battle of Cannae|Battle of Zama|Battle of Actium|Battle of Thermopylae|Battle of Marathon|Battle of Salamis)\b`,
	`\b(Peloponnesian War|Trojan War|Gallic Wars)\b`,
	`\b(Ides of March|Rubicon|Alesia)\b`,
	// Structures
	`\b(Colosseum|Pantheon|Parthenon|Acropolis|Pyramid of Giza|Sphinx|Great Wall)\b`,
	// Time markers
	`\b(BCE|B\.C\.E\.|B\.C\.|BC)\b`,
	`\b\d+\s*(BCE|B\.C\.E\.|B\.C\.|BC)\b`,
	// Concepts
	`\b(gladiator|centurion|tribune|consul|proconsul|praetor|legion|legionary)\b`,
	`\b(Pax Romana|Senate of Rome|Roman Senate)\b`,
	`\b(oracle|Delphi|Olympic Games)\b`,
	`\b(hieroglyph|papyrus|cuneiform)\b`,
}

var medievalIndicators = []string{
	`\b(medieval|Middle Ages|Dark Ages)\b`,
	`\b(feudal|feudalism|serfdom|serf|vassal|fief)\b`,
	`\b(Crusade|Crusader|Knights Templar|Teutonic|Hospitaller)\b`,
	`\b(Viking|Norse|Norsemen)\b`,
	`\b(Charlemagne|Carolingian|Merovingian)\b`,
	`\b(Magna Carta|Domesday Book)\b`,
	`\b(Black Death|bubonic plague)\b`,
	`\b(Holy Roman Empire|Papal States)\b`,
	`\b(William the Conqueror|Richard the Lionheart|Saladin)\b`,
	`\b(Genghis Khan|Mongol Empire|Kublai Khan)\b`,
	`\b(Hundred Years.? War|War of the Roses)\b`,
	`\b(castle|knight|jousting|chivalry)\b`,
	`\b(monastery|abbey|cathedral|Gothic architecture)\b`,
	`\b(Ottoman|Seljuk|Abbasid|Umayyad)\b`,
}

var usIndicators = []string{
	// Offices and institutions
	`\b(Attorney General|Secretary of State|President of the United States|POTUS)\b`,
	`\b(U\.?S\.? Supreme Court|U\.?S\.? Congress|U\.?S\.? Senate|House of Representatives)\b`,
	`\b(Constitutional Convention|Continental Congress|Founding Fathers)\b`,
	`\b(FBI|CIA|NSA|IRS|EPA|FDA)\b`,
	`\b(Democratic Party|Republican Party|Whig Party|Federalist Party)\b`,
	// Events
	`\b(American Civil War|Revolutionary War|War of 1812|Spanish-American War|Mexican-American War)\b`,
	`\b(Civil Rights Movement|New Deal|Great Society|Watergate|Iran-Contra)\b`,
	`\b(Louisiana Purchase|Manifest Destiny|Reconstruction|Prohibition)\b`,
	`\b(Pearl Harbor|9/11|September 11)\b`,
	`\b(Gettysburg|Yorktown|Bunker Hill|Valley Forge|Antietam|Bull Run)\b`,
	// Figures
	`\b(George Washington|Thomas Jefferson|Abraham Lincoln|Theodore Roosevelt|Franklin Roosevelt|FDR)\b`,
	`\b(John Adams|James Madison|James Monroe|Andrew Jackson|Ulysses Grant)\b`,
	`\b(Woodrow Wilson|Harry Truman|Dwight Eisenhower|John F\.? Kennedy|JFK)\b`,
	`\b(Lyndon Johnson|LBJ|Richard Nixon|Ronald Reagan|Bill Clinton|Barack Obama)\b`,
	`\b(Alexander Hamilton|Benjamin Franklin|John Hancock|Patrick Henry)\b`,
	`\b(Martin Luther King|Rosa Parks|Frederick Douglass|Harriet Tubman)\b`,
	`\b(Spiro Agnew|Aaron Burr|John Wilkes Booth)\b`,
	// Places
	`\b(White House|Capitol Hill|Pentagon|Oval Office|Mount Rushmore)\b`,
	`\b(Ellis Island|Statue of Liberty|Liberty Bell)\b`,
	// Documents and laws
	`\b(Declaration of Independence|U\.?S\.? Constitution|Bill of Rights|Emancipation Proclamation)\b`,
	`\b(Monroe Doctrine|Truman Doctrine|Marshall Plan)\b`,
	`\b(Thirteenth Amendment|Fourteenth Amendment|Fifteenth Amendment|Nineteenth Amendment)\b`,
}

var latinAmericaIndicators = []string{
	`\b(Latin America|South America|Central America|Caribbean)\b`,
	`\b(Mexico|Mexican|Mexico City)\b`,
	`\b(Brazil|Brazilian|Rio de Janeiro|Sao Paulo)\b`,
	`\b(Argentina|Argentine|Buenos Aires)\b`,
	`\b(Chile|Chilean|Santiago)\b`,
	`\b(Colombia|Colombian|Bogota)\b`,
	`\b(Peru|Peruvian|Lima)\b`,
	`\b(Venezuela|Venezuelan|Caracas)\b`,
	`\b(Cuba|Cuban|Havana|Castro|Che Guevara)\b`,
	`\b(Bolivia|Bolivian|Bolivar|Simon Bolivar)\b`,
	`\b(Panama|Panamanian|Panama Canal)\b`,
	`\b(Puerto Rico|Dominican Republic|Haiti|Haitian)\b`,
	`\b(Zapata|Villa|Mexican Revolution)\b`,
	`\b(Pinochet|Peron|Allende)\b`,
}

var ancientRegionFamilies = []struct {
	region   string
	patterns []string
}{
	{RegionEurope, []string{`\b(Rome|Roman|Italy|Latin|Caesar|Cicero|Nero)\b`}},
	{RegionEurope, []string{`\b(Greece|Greek|Athens|Sparta|Alexander)\b`}},
	{RegionAfrica, []string{`\b(Egypt|Pharaoh|Nile|Pyramid)\b`}},
	{RegionMENA, []string{`\b(Persia|Persian|Mesopotamia|Babylon)\b`}},
	{RegionAsia, []string{`\b(China|Chinese|India|Indian)\b`}},
}
