package catalog

// Canonical label names referenced across packages.
const (
	RegionPreColumbian Region = "Americas (Pre-Columbian)"
	RegionUnitedStates Region = "United States"
	RegionEurope       Region = "Europe"
	RegionAsia         Region = "Asia"
	RegionMENA         Region = "Middle East & North Africa"
	RegionAfrica       Region = "Africa"
	RegionLatinAmerica Region = "Latin America & Caribbean"
	RegionGlobal       Region = "Global/Multi-Regional"
)

// Region is a region label. Plain strings everywhere else; the named type
// exists only to keep the constants grouped.
type Region = string

const (
	PeriodAncient      = "Ancient World (pre-500 CE)"
	PeriodMedieval     = "Medieval Era (500-1450)"
	PeriodEarlyModern  = "Early Modern (1450-1750)"
	PeriodRevolutions  = "Age of Revolutions (1750-1850)"
	PeriodIndustrial   = "Industrial & Imperial Age (1850-1914)"
	PeriodWorldWars    = "World Wars & Interwar (1914-1945)"
	PeriodContemporary = "Contemporary Era (1945-present)"
	AnswerPeople       = "People & Biography"
	ThemePolitical     = "Political & Governmental"
)

type labelPatterns struct {
	label    string
	patterns []string
}

var regionPatterns = []labelPatterns{
	{RegionPreColumbian, []string{
		`\b(Aztec|Mexica|Nahua|Nahuatl)\b`,
		`\b(Maya|Mayan)\b`,
		`\b(Inca|Incan|Quechua)\b`,
		`\b(Olmec|Toltec|Zapotec|Mixtec)\b`,
		`\b(Tenochtitlan|Teotihuacan|Chichen Itza|Machu Picchu|Cusco|Cuzco)\b`,
		`\b(Montezuma|Moctezuma|Atahualpa|Pachacuti)\b`,
		`\b(Popol Vuh|quipu|chinampa)\b`,
		`\b(mesoamerican|pre-columbian|pre-conquest)\b`,
		`\b(Cholula|Tlaxcala|Texcoco)\b`,
	}},
	{RegionUnitedStates, []string{
		// Offices and institutions
		`\b(President of the United States|POTUS|Vice President)\b`,
		`\b(U\.?S\.? Supreme Court|U\.?S\.? Congress|U\.?S\.? Senate)\b`,
		`\b(House of Representatives|Constitutional Convention)\b`,
		`\b(Continental Congress|Founding Fathers|Framers)\b`,
		`\b(FBI|CIA|NSA|IRS|EPA|FDA|NASA)\b`,
		`\b(Democratic Party|Republican Party|Whig Party|Federalist Party)\b`,
		`\b(Attorney General|Secretary of State|Secretary of)\b`,
		// Events
		`\b(American Civil War|Union Army|Confederate|Confederacy)\b`,
		`\b(Revolutionary War|American Revolution)\b`,
		`\b(War of 1812|Spanish-American War|Mexican-American War)\b`,
		`\b(Civil Rights Movement|New Deal|Great Society|Watergate)\b`,
		`\b(Louisiana Purchase|Manifest Destiny|Reconstruction)\b`,
		`\b(Pearl Harbor|9/11|September 11)\b`,
		`\b(Gettysburg|Yorktown|Bunker Hill|Valley Forge|Antietam|Bull Run)\b`,
		`\b(Boston Tea Party|Boston Massacre)\b`,
		// Presidents
		`\b(George Washington|Thomas Jefferson|Abraham Lincoln)\b`,
		`\b(Theodore Roosevelt|Franklin Roosevelt|FDR)\b`,
		`\b(John Adams|James Madison|James Monroe|Andrew Jackson)\b`,
		`\b(Ulysses Grant|Woodrow Wilson|Harry Truman)\b`,
		`\b(Dwight Eisenhower|John F\.? Kennedy|JFK)\b`,
		`\b(Lyndon Johnson|LBJ|Richard Nixon|Gerald Ford)\b`,
		`\b(Jimmy Carter|Ronald Reagan|George H\.?W\.? Bush)\b`,
		`\b(Bill Clinton|George W\.? Bush|Barack Obama|Donald Trump|Joe Biden)\b`,
		// Other figures
		`\b(Alexander Hamilton|Benjamin Franklin|John Hancock|Patrick Henry)\b`,
		`\b(Martin Luther King|Rosa Parks|Frederick Douglass|Harriet Tubman)\b`,
		`\b(Robert E\.? Lee|Stonewall Jackson|Ulysses S\.? Grant)\b`,
		`\b(Aaron Burr|John Wilkes Booth|Lee Harvey Oswald)\b`,
		// Places
		`\b(White House|Capitol Hill|Pentagon|Oval Office|Mount Rushmore)\b`,
		`\b(Ellis Island|Statue of Liberty|Liberty Bell)\b`,
		`\b(Jamestown|Plymouth|Mayflower)\b`,
		// Documents
		`\b(Declaration of Independence|U\.?S\.? Constitution|Bill of Rights)\b`,
		`\b(Emancipation Proclamation|Gettysburg Address)\b`,
		`\b(Monroe Doctrine|Truman Doctrine|Marshall Plan)\b`,
		`\b(Federalist Papers|Articles of Confederation)\b`,
		// Major states
		`\b(New York|California|Texas|Florida|Massachusetts)\b`,
		`\b(Virginia|Pennsylvania|Illinois|Ohio|Georgia)\b`,
		`\b(Washington D\.?C\.?|District of Columbia)\b`,
	}},
	{RegionEurope, []string{
		// Countries
		`\b(Britain|British|England|English|United Kingdom|UK)\b`,
		`\b(Scotland|Scottish|Wales|Welsh|Ireland|Irish)\b`,
		`\b(France|French|Paris|Versailles|Gaul|Gallic)\b`,
		`\b(Germany|German|Prussia|Prussian|Berlin|Bavaria)\b`,
		`\b(Italy|Italian|Rome|Roman|Venice|Florence|Milan)\b`,
		`\b(Spain|Spanish|Madrid|Castile|Aragon|Catalonia)\b`,
		`\b(Russia|Russian|Moscow|St\.? Petersburg|Soviet|USSR)\b`,
		`\b(Poland|Polish|Austria|Austrian|Hungary|Hungarian)\b`,
		`\b(Netherlands|Dutch|Belgium|Belgian|Switzerland|Swiss)\b`,
		`\b(Sweden|Swedish|Denmark|Danish|Norway|Norwegian)\b`,
		`\b(Finland|Finnish|Portugal|Portuguese|Greece|Greek)\b`,
		`\b(Czech|Czechoslovakia|Yugoslavia|Serbia|Croatia)\b`,
		`\b(Romania|Bulgarian|Ukraine|Ukrainian)\b`,
		// Figures
		`\b(Napoleon|Bonaparte|Hitler|Stalin|Churchill|Bismarck)\b`,
		`\b(Queen Victoria|Henry VIII|Elizabeth I|Elizabeth II)\b`,
		`\b(Louis XIV|Louis XVI|Marie Antoinette)\b`,
		`\b(Kaiser Wilhelm|Frederick the Great|Catherine the Great)\b`,
		`\b(Charlemagne|William the Conqueror|Richard the Lionheart)\b`,
		`\b(Lenin|Trotsky|Gorbachev|Khrushchev)\b`,
		`\b(Mussolini|Franco|De Gaulle)\b`,
		// Events and concepts
		`\b(Renaissance|Reformation|Enlightenment|Industrial Revolution)\b`,
		`\b(World War I|World War II|WWI|WWII|WW1|WW2)\b`,
		`\b(Cold War|Iron Curtain|Berlin Wall)\b`,
		`\b(French Revolution|Russian Revolution|Bolshevik)\b`,
		`\b(Hundred Years.? War|Thirty Years.? War|Seven Years.? War)\b`,
		`\b(NATO|European Union|EU|Brexit|Common Market)\b`,
		`\b(Holocaust|Auschwitz|Normandy|D-Day)\b`,
		`\b(Treaty of Versailles|Congress of Vienna)\b`,
		// Ancient European
		`\b(Ancient Greece|Ancient Rome|Sparta|Spartan|Athens|Athenian)\b`,
		`\b(Roman Empire|Roman Republic|Byzantine|Byzantium)\b`,
		`\b(Julius Caesar|Augustus|Nero|Marcus Aurelius|Constantine)\b`,
		`\b(Socrates|Plato|Aristotle|Alexander the Great)\b`,
		`\b(Colosseum|Parthenon|Acropolis|Pantheon)\b`,
	}},
	{RegionAsia, []string{
		// Countries
		`\b(China|Chinese|Beijing|Shanghai|Hong Kong|Taiwan)\b`,
		`\b(Japan|Japanese|Tokyo|Kyoto|Osaka)\b`,
		`\b(India|Indian|Delhi|Mumbai|Bombay|Calcutta|Kolkata)\b`,
		`\b(Korea|Korean|Seoul|Pyongyang|North Korea|South Korea)\b`,
		`\b(Vietnam|Vietnamese|Hanoi|Saigon|Ho Chi Minh)\b`,
		`\b(Thailand|Thai|Cambodia|Cambodian|Khmer)\b`,
		`\b(Indonesia|Indonesian|Philippines|Filipino|Malaysia)\b`,
		`\b(Pakistan|Pakistani|Bangladesh|Bangladeshi|Sri Lanka)\b`,
		`\b(Myanmar|Burma|Burmese|Singapore|Laos)\b`,
		`\b(Mongolia|Mongolian|Tibet|Tibetan)\b`,
		// Figures
		`\b(Mao|Zedong|Mao Tse-tung|Deng Xiaoping|Xi Jinping)\b`,
		`\b(Gandhi|Nehru|Indira Gandhi)\b`,
		`\b(Hirohito|Emperor Meiji|Tojo)\b`,
		`\b(Kim Il-sung|Kim Jong)\b`,
		`\b(Genghis Khan|Kublai Khan|Tamerlane)\b`,
		`\b(Confucius|Buddha|Siddhartha)\b`,
		`\b(Sun Yat-sen|Chiang Kai-shek)\b`,
		// Events and concepts
		`\b(Korean War|Vietnam War|Sino-Japanese)\b`,
		`\b(Opium War|Boxer Rebellion|Tiananmen)\b`,
		`\b(Hiroshima|Nagasaki|atomic bomb)\b`,
		`\b(Ming Dynasty|Qing Dynasty|Tang Dynasty|Han Dynasty)\b`,
		`\b(Meiji Restoration|Tokugawa|shogun|samurai)\b`,
		`\b(Silk Road|Great Wall of China)\b`,
		`\b(Hinduism|Buddhism|Confucianism|Shinto)\b`,
		`\b(Mughal|Raj|British India|East India Company)\b`,
	}},
	{RegionMENA, []string{
		// Countries and regions
		`\b(Middle East|Near East)\b`,
		`\b(Israel|Israeli|Palestine|Palestinian|Jerusalem|Tel Aviv)\b`,
		`\b(Iraq|Iraqi|Baghdad|Mesopotamia|Babylon)\b`,
		`\b(Iran|Iranian|Tehran|Persia|Persian)\b`,
		`\b(Syria|Syrian|Damascus)\b`,
		`\b(Turkey|Turkish|Istanbul|Constantinople|Ankara|Ottoman)\b`,
		`\b(Egypt|Egyptian|Cairo|Alexandria|Nile|Pharaoh)\b`,
		`\b(Saudi Arabia|Saudi|Mecca|Medina)\b`,
		`\b(Lebanon|Lebanese|Beirut|Jordan|Jordanian)\b`,
		`\b(Kuwait|Kuwaiti|UAE|Dubai|Qatar|Bahrain)\b`,
		`\b(Libya|Libyan|Tunisia|Tunisian|Algeria|Algerian|Morocco|Moroccan)\b`,
		`\b(Yemen|Yemeni|Oman)\b`,
		// Figures
		`\b(Nasser|Sadat|Mubarak|Arafat|Netanyahu)\b`,
		`\b(Saddam Hussein|Khomeini|Ataturk)\b`,
		`\b(Saladin|Suleiman the Magnificent)\b`,
		`\b(Muhammad|Mohammed|Prophet)\b`,
		`\b(Cyrus the Great|Darius|Xerxes)\b`,
		`\b(Cleopatra|Ramses|Tutankhamun|Nefertiti)\b`,
		// Events and concepts
		`\b(Islam|Islamic|Muslim|Quran|Koran)\b`,
		`\b(Caliph|Caliphate|Sultan|Sultanate)\b`,
		`\b(Arab Spring|Gulf War|Iran-Iraq War)\b`,
		`\b(Suez Canal|Suez Crisis)\b`,
		`\b(Six-Day War|Yom Kippur War|Camp David)\b`,
		`\b(Ottoman Empire|Safavid|Abbasid|Umayyad)\b`,
		`\b(Crusade|Crusader|Holy Land)\b`,
		`\b(Zionism|Zionist|Balfour Declaration)\b`,
		`\b(Ancient Egypt|Pyramid|Sphinx|hieroglyph)\b`,
	}},
	{RegionAfrica, []string{
		// Countries (sub-Saharan)
		`\b(Nigeria|Nigerian|Lagos|Abuja)\b`,
		`\b(South Africa|Johannesburg|Cape Town|Pretoria)\b`,
		`\b(Kenya|Kenyan|Nairobi)\b`,
		`\b(Ethiopia|Ethiopian|Addis Ababa|Abyssinia)\b`,
		`\b(Congo|Congolese|Kinshasa|Zaire)\b`,
		`\b(Ghana|Ghanaian|Accra)\b`,
		`\b(Zimbabwe|Zimbabwean|Rhodesia)\b`,
		`\b(Tanzania|Tanzanian|Uganda|Ugandan)\b`,
		`\b(Rwanda|Rwandan|Burundi)\b`,
		`\b(Sudan|Sudanese|Khartoum)\b`,
		`\b(Senegal|Ivory Coast|Mali|Niger)\b`,
		`\b(Angola|Angolan|Mozambique)\b`,
		`\b(Botswana|Namibia|Zambia)\b`,
		// Figures
		`\b(Mandela|Nelson Mandela)\b`,
		`\b(Desmond Tutu|Steve Biko)\b`,
		`\b(Haile Selassie|Idi Amin|Mugabe)\b`,
		`\b(Shaka Zulu|Mansa Musa)\b`,
		// Events and concepts
		`\b(Apartheid|anti-apartheid)\b`,
		`\b(Rwandan genocide|Darfur)\b`,
		`\b(Scramble for Africa|colonialism|decolonization)\b`,
		`\b(Zulu|Bantu|Swahili)\b`,
		`\b(Sahara|Sahel|sub-Saharan)\b`,
		`\b(Timbuktu|Great Zimbabwe)\b`,
		`\b(slave trade|Middle Passage)\b`,
		`\b(Boer War|Mau Mau)\b`,
	}},
	{RegionLatinAmerica, []string{
		// Countries
		`\b(Mexico|Mexican|Mexico City)\b`,
		`\b(Brazil|Brazilian|Rio de Janeiro|Sao Paulo|Brasilia)\b`,
		`\b(Argentina|Argentine|Buenos Aires)\b`,
		`\b(Chile|Chilean|Santiago)\b`,
		`\b(Colombia|Colombian|Bogota)\b`,
		`\b(Peru|Peruvian|Lima)\b`,
		`\b(Venezuela|Venezuelan|Caracas)\b`,
		`\b(Cuba|Cuban|Havana)\b`,
		`\b(Bolivia|Bolivian|La Paz)\b`,
		`\b(Ecuador|Ecuadorian|Quito)\b`,
		`\b(Paraguay|Paraguayan|Uruguay|Uruguayan)\b`,
		`\b(Panama|Panamanian|Panama Canal)\b`,
		`\b(Puerto Rico|Dominican Republic|Haiti|Haitian|Jamaica)\b`,
		`\b(Guatemala|Honduras|El Salvador|Nicaragua|Costa Rica)\b`,
		// Figures
		`\b(Simon Bolivar|Bolivar)\b`,
		`\b(Fidel Castro|Castro|Che Guevara|Raul Castro)\b`,
		`\b(Peron|Eva Peron|Evita)\b`,
		`\b(Pinochet|Allende)\b`,
		`\b(Zapata|Pancho Villa|Mexican Revolution)\b`,
		`\b(Cortes|Cortez|Pizarro|conquistador)\b`,
		`\b(Toussaint Louverture|Duvalier)\b`,
		// Events and concepts
		`\b(Latin America|South America|Central America|Caribbean)\b`,
		`\b(Bay of Pigs|Cuban Missile Crisis)\b`,
		`\b(Falklands War|Malvinas)\b`,
		`\b(Dirty War|Desaparecidos)\b`,
		`\b(Sandinista|Contra|FARC)\b`,
		`\b(Organization of American States|OAS)\b`,
	}},
	{RegionGlobal, []string{
		`\b(United Nations|UN|UNESCO|WHO|IMF|World Bank)\b`,
		`\b(World War|global|international|worldwide)\b`,
		`\b(Cold War)\b`,
		`\b(League of Nations)\b`,
		`\b(globalization|multinational)\b`,
		`\b(imperialism|colonialism)\b`,
	}},
}

var timePeriodPatterns = []labelPatterns{
	{PeriodAncient, []string{
		// Explicit markers
		`\b(BCE|B\.C\.E\.|B\.C\.|BC)\b`,
		`\b(ancient|antiquity)\b`,
		// Civilizations
		`\b(Roman Empire|Roman Republic|Ancient Rome|Ancient Greece)\b`,
		`\b(Ancient Egypt|Pharaoh|Pyramid of Giza|Sphinx)\b`,
		`\b(Mesopotamia|Babylon|Babylonian|Assyria|Assyrian|Sumer)\b`,
		`\b(Persian Empire|Achaemenid)\b`,
		`\b(Sparta|Spartan|Athens|Athenian|Macedon)\b`,
		`\b(Carthage|Carthaginian|Phoenicia|Phoenician)\b`,
		// Figures
		`\b(Julius Caesar|Augustus|Nero|Caligula|Tiberius|Trajan|Hadrian|Marcus Aurelius|Constantine)\b`,
		`\b(Alexander the Great|Philip of Macedon)\b`,
		`\b(Socrates|Plato|Aristotle|Pericles|Themistocles)\b`,
		`\b(Hannibal|Scipio|Cicero|Cato)\b`,
		`\b(Cleopatra|Ramses|Tutankhamun|Nefertiti|Akhenaten)\b`,
		`\b(Cyrus the Great|Darius|Xerxes)\b`,
		`\b(Confucius|Buddha|Siddhartha)\b`,
		`\b(Hammurabi|Nebuchadnezzar|Gilgamesh)\b`,
		// Events
		`\b(Punic War|Peloponnesian War|Trojan War|Gallic Wars)\b`,
		`\b(Battle of Thermopylae|Battle of Marathon|Battle of Salamis)\b`,
		`\b(Battle of Cannae|Battle of Zama|Battle of Actium)\b`,
		`\b(Ides of March|crossing the Rubicon)\b`,
		// Concepts
		`\b(gladiator|centurion|legion|legionary|tribune|consul)\b`,
		`\b(Colosseum|Parthenon|Acropolis|Pantheon)\b`,
		`\b(hieroglyph|papyrus|cuneiform)\b`,
		`\b(oracle|Delphi)\b`,
	}},
	{PeriodMedieval, []string{
		`\b(medieval|Middle Ages|Dark Ages)\b`,
		`\b(feudal|feudalism|serf|serfdom|vassal|fief|manor)\b`,
		`\b(Crusade|Crusader|Knights Templar|Teutonic|Hospitaller)\b`,
		`\b(Viking|Norse|Norsemen|Varangian)\b`,
		`\b(Charlemagne|Carolingian|Merovingian)\b`,
		`\b(Magna Carta|Domesday Book)\b`,
		`\b(Black Death|bubonic plague)\b`,
		`\b(Holy Roman Empire|Papal States)\b`,
		`\b(William the Conqueror|Richard the Lionheart|Saladin)\b`,
		`\b(Genghis Khan|Mongol Empire|Kublai Khan|Golden Horde)\b`,
		`\b(Hundred Years.? War|War of the Roses)\b`,
		`\b(Byzantine|Byzantium|Constantinople)\b`,
		`\b(Ottoman|Seljuk|Abbasid|Umayyad)\b`,
		`\b(castle|knight|jousting|chivalry|heraldry)\b`,
		`\b(monastery|abbey|Gothic cathedral)\b`,
		`\b(Norman Conquest|Battle of Hastings)\b`,
		`\b(Inquisition|heresy)\b`,
	}},
	{PeriodEarlyModern, []string{
		`\b(Renaissance|Reformation|Counter-Reformation)\b`,
		`\b(Protestant|Protestantism|Luther|Calvin|Calvinist)\b`,
		`\b(Elizabethan|Tudor|Stuart)\b`,
		`\b(Thirty Years.? War|War of Spanish Succession)\b`,
		`\b(Columbus|Magellan|Vasco da Gama|Cortes|Pizarro)\b`,
		`\b(conquistador|colonization|New World)\b`,
		`\b(Jamestown|Plymouth|Mayflower|Pilgrims|Puritans)\b`,
		`\b(Shakespeare|Gutenberg|Leonardo|Michelangelo|Galileo)\b`,
		`\b(Henry VIII|Elizabeth I|Mary Queen of Scots)\b`,
		`\b(Louis XIV|Sun King|Versailles)\b`,
		`\b(Peter the Great|Ivan the Terrible)\b`,
		`\b(Mughal|Tokugawa|Ming Dynasty|Qing Dynasty)\b`,
		`\b(East India Company|Dutch East India)\b`,
		`\b(Spanish Armada|English Civil War)\b`,
		`\b(Enlightenment|Age of Reason)\b`,
		`\b(1[5-7]\d{2})\b`, // years 1500-1799
	}},
	{PeriodRevolutions, []string{
		`\b(American Revolution|Revolutionary War|1776)\b`,
		`\b(French Revolution|Bastille|guillotine|Robespierre|Jacobin)\b`,
		`\b(Declaration of Independence|Constitution|Bill of Rights)\b`,
		`\b(Napoleon|Napoleonic|Waterloo|Congress of Vienna)\b`,
		`\b(George Washington|Thomas Jefferson|Benjamin Franklin)\b`,
		`\b(Continental Congress|Founding Fathers)\b`,
		`\b(Haitian Revolution|Toussaint Louverture)\b`,
		`\b(Simon Bolivar|Latin American independence)\b`,
		`\b(War of 1812)\b`,
		`\b(Industrial Revolution)\b`,
		`\b(Monroe Doctrine)\b`,
		`\b(1[78]\d{2})\b`, // years 1700-1899, overlaps intentionally
	}},
	{PeriodIndustrial, []string{
		`\b(Victorian|Queen Victoria)\b`,
		`\b(American Civil War|Civil War|1861|1865)\b`,
		`\b(Abraham Lincoln|Gettysburg|Emancipation)\b`,
		`\b(Reconstruction|Jim Crow)\b`,
		`\b(Bismarck|German unification|Franco-Prussian)\b`,
		`\b(Meiji|Meiji Restoration)\b`,
		`\b(imperialism|colonialism|Scramble for Africa)\b`,
		`\b(Spanish-American War|1898)\b`,
		`\b(Boer War)\b`,
		`\b(Boxer Rebellion|Opium War)\b`,
		`\b(railroad|telegraph|steamship)\b`,
		`\b(Theodore Roosevelt|Teddy Roosevelt)\b`,
		`\b(Gilded Age|Progressive Era)\b`,
		`\b(suffrage|suffragette)\b`,
		`\b(18[5-9]\d|190\d|191[0-3])\b`, // years 1850-1913
	}},
	{PeriodWorldWars, []string{
		`\b(World War I|World War II|WWI|WWII|WW1|WW2|First World War|Second World War)\b`,
		`\b(1914|1918|1939|1941|1945)\b`,
		`\b(Treaty of Versailles|League of Nations)\b`,
		`\b(Great Depression|New Deal|1929)\b`,
		`\b(Hitler|Nazi|Third Reich|Holocaust|Auschwitz)\b`,
		`\b(Mussolini|Fascist|fascism)\b`,
		`\b(Stalin|Soviet|Bolshevik|Russian Revolution)\b`,
		`\b(Churchill|Roosevelt|FDR)\b`,
		`\b(Pearl Harbor|D-Day|Normandy)\b`,
		`\b(Hiroshima|Nagasaki|atomic bomb|Manhattan Project)\b`,
		`\b(Trench warfare|Somme|Verdun|Gallipoli)\b`,
		`\b(Weimar|Reichstag)\b`,
		`\b(Spanish Civil War)\b`,
		`\b(appeasement|Munich Agreement)\b`,
		`\b(191[4-9]|19[234]\d)\b`, // years 1914-1949
	}},
	{PeriodContemporary, []string{
		`\b(Cold War|Iron Curtain|Berlin Wall)\b`,
		`\b(Korean War|Vietnam War|Gulf War|Iraq War|Afghanistan)\b`,
		`\b(United Nations|UN|NATO|Warsaw Pact)\b`,
		`\b(Cuban Missile Crisis|Bay of Pigs)\b`,
		`\b(Civil Rights Movement|Martin Luther King|Rosa Parks)\b`,
		`\b(Kennedy|JFK|Nixon|Reagan|Clinton|Obama|Trump|Biden)\b`,
		`\b(Watergate|Iran-Contra)\b`,
		`\b(9/11|September 11|War on Terror)\b`,
		`\b(Soviet Union|USSR|Gorbachev|Khrushchev)\b`,
		`\b(Mao|Cultural Revolution|Tiananmen)\b`,
		`\b(apartheid|Mandela)\b`,
		`\b(European Union|EU|Brexit)\b`,
		`\b(decolonization|independence movement)\b`,
		`\b(space race|Moon landing|Apollo)\b`,
		`\b(internet|digital|computer)\b`,
		`\b(19[5-9]\d|20[0-2]\d)\b`, // years 1950-2029
	}},
}

var answerTypePatterns = []labelPatterns{
	{"Documents, Laws & Treaties", []string{
		`\b(treaty|treaties|Treaty of)\b`,
		`\b(constitution|constitutional)\b`,
		`\b(declaration|Declaration of)\b`,
		`\b(act|Act of|legislation|law|statute)\b`,
		`\b(bill|Bill of)\b`,
		`\b(amendment|Amendment)\b`,
		`\b(charter|proclamation|edict|decree)\b`,
		`\b(Magna Carta|concordat|covenant|pact|accord)\b`,
		`\b(document|manuscript|code of)\b`,
	}},
	{"Events (Wars, Battles, Revolutions)", []string{
		`\b(battle|Battle of)\b`,
		`\b(war|War of|World War|Civil War)\b`,
		`\b(revolution|Revolution|revolutionary)\b`,
		`\b(revolt|uprising|rebellion|insurrection)\b`,
		`\b(siege|Siege of|invasion|Invasion of)\b`,
		`\b(campaign|offensive|operation)\b`,
		`\b(massacre|genocide|atrocity)\b`,
		`\b(assassination|coup|putsch)\b`,
	}},
	{"Religion & Mythology", []string{
		`\b(god|goddess|deity|deities|divine)\b`,
		`\b(myth|mythology|mythical|mythological)\b`,
		`\b(religion|religious)\b`,
		`\b(Bible|Quran|Torah|scripture)\b`,
		`\b(Buddhism|Hinduism|Islam|Christianity|Judaism)\b`,
		`\b(church|mosque|temple|synagogue|cathedral)\b`,
		`\b(saint|apostle|prophet|pope|bishop|priest)\b`,
		`\b(Zeus|Apollo|Athena|Odin|Thor|Ra|Osiris)\b`,
		`\b(miracle|sacred|holy|divine)\b`,
	}},
	{"Cultural History (Art, Literature, Music)", []string{
		`\b(novel|book|poem|poetry|author|writer|wrote)\b`,
		`\b(painting|painter|painted|sculpture|sculptor)\b`,
		`\b(composer|symphony|opera|concerto|sonata)\b`,
		`\b(artist|artwork|masterpiece|canvas|fresco)\b`,
		`\b(playwright|play|drama|theater|theatre)\b`,
		`\b(literary|literature|epic|sonnet)\b`,
		`\b(baroque|renaissance art|impressionist|modernist)\b`,
		`\b(ballet|dance|choreograph)\b`,
		`\b(film|movie|cinema|director)\b`,
		`\b(album|band|song|singer|musician)\b`,
	}},
	{"Science, Technology & Innovation", []string{
		`\b(invented|invention|inventor)\b`,
		`\b(discovered|discovery|discoverer)\b`,
		`\b(scientist|physicist|chemist|biologist)\b`,
		`\b(theory|theorem|formula|equation)\b`,
		`\b(experiment|laboratory)\b`,
		`\b(telescope|microscope|vaccine)\b`,
		`\b(patent|innovation|technological)\b`,
		`\b(steam engine|railroad|telegraph|telephone)\b`,
		`\b(computer|internet|nuclear|atomic)\b`,
	}},
	{"Economic History & Trade", []string{
		`\b(trade|trading|commerce|merchant)\b`,
		`\b(economic|economy|economics)\b`,
		`\b(currency|money|coin|gold standard)\b`,
		`\b(bank|banking|financial)\b`,
		`\b(depression|recession|crash)\b`,
		`\b(tariff|tax|taxation)\b`,
		`\b(export|import|mercantile)\b`,
		`\b(Silk Road|spice trade)\b`,
		`\b(stock market|Wall Street)\b`,
	}},
	{"Geography & Environment", []string{
		`\b(mountain|river|ocean|sea|lake|strait)\b`,
		`\b(volcano|earthquake|tsunami)\b`,
		`\b(desert|peninsula|island|archipelago)\b`,
		`\b(climate|weather|environment)\b`,
		`\b(geographic|geography|cartograph)\b`,
		`\b(natural disaster|flood|drought|famine)\b`,
		`\b(canyon|valley|plateau|basin)\b`,
		`\b(national park|wildlife|conservation)\b`,
	}},
	{"Groups, Organizations & Institutions", []string{
		`\b(organization|institution)\b`,
		`\b(party|political party)\b`,
		`\b(league|union|association|federation)\b`,
		`\b(United Nations|NATO|EU)\b`,
		`\b(company|corporation|firm)\b`,
		`\b(order|Order of|society|Society of)\b`,
		`\b(guild|fraternity|brotherhood)\b`,
		`\b(army|navy|military|regiment)\b`,
		`\b(tribe|clan|people|ethnic group)\b`,
	}},
	{"Ideas, Ideologies & Philosophies", []string{
		`\b(philosophy|philosopher|philosophical)\b`,
		`\b(ideology|ideological)\b`,
		`\b(doctrine|dogma)\b`,
		`\b(theory of|concept of|idea of)\b`,
		`\b(socialism|capitalism|communism|fascism)\b`,
		`\b(liberalism|conservatism|nationalism)\b`,
		`\b(enlightenment thought|intellectual movement)\b`,
		`\b(movement|ism)\b`,
	}},
	{"Political History & Diplomacy", []string{
		`\b(election|elected|vote|voting)\b`,
		`\b(congress|parliament|senate|legislature)\b`,
		`\b(political|politics|politician)\b`,
		`\b(diplomacy|diplomatic|ambassador)\b`,
		`\b(policy|administration|cabinet)\b`,
		`\b(reform|legislation|bill)\b`,
		`\b(campaign|primary|nomination)\b`,
	}},
	{"Social History & Daily Life", []string{
		`\b(social|society)\b`,
		`\b(daily life|lifestyle|custom|tradition)\b`,
		`\b(class|peasant|aristocrat|nobility)\b`,
		`\b(slavery|slave|enslaved|abolitionist)\b`,
		`\b(immigration|migration|emigration)\b`,
		`\b(labor|worker|union|strike)\b`,
		`\b(women.?s rights|suffrage|feminist)\b`,
		`\b(civil rights|equality|discrimination)\b`,
	}},
	{"Places, Cities & Civilizations", []string{
		`\b(city|capital|metropolis)\b`,
		`\b(empire|kingdom|dynasty|realm)\b`,
		`\b(civilization|civilisation)\b`,
		`\b(colony|colonial|settlement)\b`,
		`\b(founded|established|built)\b`,
		`\b(located|situated|site of)\b`,
		`\b(ancient|medieval) .*(city|civilization|empire)\b`,
	}},
	{AnswerPeople, []string{
		`\b(who was|who is|name this person|name this man|name this woman)\b`,
		`\b(this leader|this president|this king|this queen|this emperor)\b`,
		`\b(this general|this inventor|this scientist|this artist)\b`,
		`\b(this author|this composer|this explorer)\b`,
		`\b(born|died|childhood|biography|life of)\b`,
		`\b(assassinated|executed|murdered)\b`,
		`\b(succeeded|predecessor|heir|dynasty)\b`,
	}},
}

var subjectThemePatterns = []labelPatterns{
	{"Military & Conflict", []string{
		`\b(war|battle|military|army|navy|soldier|weapon)\b`,
		`\b(siege|invasion|conquest|defeat|victory)\b`,
		`\b(general|admiral|commander|troops)\b`,
		`\b(campaign|offensive|defensive|strategy)\b`,
	}},
	{ThemePolitical, []string{
		`\b(political|government|president|congress|parliament)\b`,
		`\b(election|vote|law|constitution|treaty)\b`,
		`\b(king|queen|emperor|monarch|ruler)\b`,
		`\b(republic|democracy|dictatorship|regime)\b`,
	}},
	{"Religion & Philosophy", []string{
		`\b(religion|religious|church|temple|mosque)\b`,
		`\b(god|goddess|divine|sacred|holy)\b`,
		`\b(philosophy|philosopher|thought|belief)\b`,
		`\b(Christianity|Islam|Judaism|Buddhism|Hinduism)\b`,
	}},
	{"Arts & Literature", []string{
		`\b(art|artist|painting|sculpture|music)\b`,
		`\b(literature|novel|poem|author|writer)\b`,
		`\b(theater|drama|opera|symphony)\b`,
		`\b(Renaissance|baroque|romantic|modernist)\b`,
	}},
	{"Science & Technology", []string{
		`\b(science|scientific|scientist|discovery)\b`,
		`\b(technology|invention|inventor|innovation)\b`,
		`\b(physics|chemistry|biology|medicine)\b`,
		`\b(experiment|theory|laboratory)\b`,
	}},
	{"Economic & Trade", []string{
		`\b(economic|economy|trade|commerce)\b`,
		`\b(money|currency|bank|financial)\b`,
		`\b(merchant|market|industry|manufacture)\b`,
		`\b(depression|recession|prosperity)\b`,
	}},
	{"Social Movements & Culture", []string{
		`\b(social|society|movement|reform)\b`,
		`\b(rights|equality|freedom|liberty)\b`,
		`\b(culture|cultural|tradition|custom)\b`,
		`\b(revolution|protest|demonstration)\b`,
	}},
}
