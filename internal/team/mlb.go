package team

// mlbTeams uses CBS Sports abbreviations and URL slugs
var mlbTeams = []Team{
	{Name: "Arizona Diamondbacks", Abbreviation: "ARI", Slug: "arizona-diamondbacks", Mascot: "Diamondbacks"},
	{Name: "Atlanta Braves", Abbreviation: "ATL", Slug: "atlanta-braves", Mascot: "Braves"},
	{Name: "Baltimore Orioles", Abbreviation: "BAL", Slug: "baltimore-orioles", Mascot: "Orioles"},
	{Name: "Boston Red Sox", Abbreviation: "BOS", Slug: "boston-red-sox", Mascot: "Red Sox"},
	{Name: "Chicago Cubs", Abbreviation: "CHC", Slug: "chicago-cubs", Mascot: "Cubs"},
	{Name: "Chicago White Sox", Abbreviation: "CHW", Slug: "chicago-white-sox", Mascot: "White Sox"},
	{Name: "Cincinnati Reds", Abbreviation: "CIN", Slug: "cincinnati-reds", Mascot: "Reds"},
	{Name: "Cleveland Guardians", Abbreviation: "CLE", Slug: "cleveland-guardians", Mascot: "Guardians"},
	{Name: "Colorado Rockies", Abbreviation: "COL", Slug: "colorado-rockies", Mascot: "Rockies"},
	{Name: "Detroit Tigers", Abbreviation: "DET", Slug: "detroit-tigers", Mascot: "Tigers"},
	{Name: "Houston Astros", Abbreviation: "HOU", Slug: "houston-astros", Mascot: "Astros"},
	{Name: "Kansas City Royals", Abbreviation: "KC", Slug: "kansas-city-royals", Mascot: "Royals"},
	{Name: "Los Angeles Angels", Abbreviation: "LAA", Slug: "los-angeles-angels", Mascot: "Angels"},
	{Name: "Los Angeles Dodgers", Abbreviation: "LAD", Slug: "los-angeles-dodgers", Mascot: "Dodgers"},
	{Name: "Miami Marlins", Abbreviation: "MIA", Slug: "miami-marlins", Mascot: "Marlins"},
	{Name: "Milwaukee Brewers", Abbreviation: "MIL", Slug: "milwaukee-brewers", Mascot: "Brewers"},
	{Name: "Minnesota Twins", Abbreviation: "MIN", Slug: "minnesota-twins", Mascot: "Twins"},
	{Name: "New York Mets", Abbreviation: "NYM", Slug: "new-york-mets", Mascot: "Mets"},
	{Name: "New York Yankees", Abbreviation: "NYY", Slug: "new-york-yankees", Mascot: "Yankees"},
	{Name: "Oakland Athletics", Abbreviation: "OAK", Slug: "oakland-athletics", Mascot: "Athletics"},
	{Name: "Philadelphia Phillies", Abbreviation: "PHI", Slug: "philadelphia-phillies", Mascot: "Phillies"},
	{Name: "Pittsburgh Pirates", Abbreviation: "PIT", Slug: "pittsburgh-pirates", Mascot: "Pirates"},
	{Name: "San Diego Padres", Abbreviation: "SD", Slug: "san-diego-padres", Mascot: "Padres"},
	{Name: "San Francisco Giants", Abbreviation: "SF", Slug: "san-francisco-giants", Mascot: "Giants"},
	{Name: "Seattle Mariners", Abbreviation: "SEA", Slug: "seattle-mariners", Mascot: "Mariners"},
	{Name: "St. Louis Cardinals", Abbreviation: "STL", Slug: "st-louis-cardinals", Mascot: "Cardinals"},
	{Name: "Tampa Bay Rays", Abbreviation: "TB", Slug: "tampa-bay-rays", Mascot: "Rays"},
	{Name: "Texas Rangers", Abbreviation: "TEX", Slug: "texas-rangers", Mascot: "Rangers"},
	{Name: "Toronto Blue Jays", Abbreviation: "TOR", Slug: "toronto-blue-jays", Mascot: "Blue Jays"},
	{Name: "Washington Nationals", Abbreviation: "WAS", Slug: "washington-nationals", Mascot: "Nationals"},
}
