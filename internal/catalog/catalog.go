// Package catalog holds the fixed movie list seeded into storage the
// first time any room requests movies.  The list is reference data for
// the MVP; no external catalog ingestion exists.
package catalog

// Entry describes one seed movie.  Poster URLs are not populated for
// the static catalog.
type Entry struct {
	Title       string
	Year        int
	Genre       string
	Description string
}

// Movies is the seed catalog, inserted in order so that ids are stable
// across deployments.
var Movies = []Entry{
	{"The Shawshank Redemption", 1994, "Drama", "Two imprisoned men bond over a number of years..."},
	{"The Godfather", 1972, "Crime, Drama", "The aging patriarch of an organized crime dynasty..."},
	{"The Dark Knight", 2008, "Action, Crime, Drama", "When the menace known as the Joker wreaks havoc..."},
	{"Pulp Fiction", 1994, "Crime, Drama", "The lives of two mob hitmen, a boxer..."},
	{"Inception", 2010, "Action, Sci-Fi", "A thief who steals corporate secrets through dream-sharing technology..."},
	{"Fight Club", 1999, "Drama", "An insomniac office worker and a devil-may-care soapmaker..."},
	{"Forrest Gump", 1994, "Drama, Romance", "The presidencies of Kennedy and Johnson, the Vietnam War..."},
	{"The Matrix", 1999, "Action, Sci-Fi", "A computer hacker learns about the true nature of his reality..."},
	{"Goodfellas", 1990, "Biography, Crime, Drama", "The story of Henry Hill and his life in the mob..."},
	{"The Silence of the Lambs", 1991, "Crime, Drama, Thriller", "A young FBI cadet must receive the help of an incarcerated..."},
	{"Interstellar", 2014, "Adventure, Drama, Sci-Fi", "A team of explorers travel through a wormhole in space..."},
	{"Parasite", 2019, "Comedy, Drama, Thriller", "Greed and class discrimination threaten the newly formed symbiotic relationship..."},
	{"The Green Mile", 1999, "Crime, Drama, Fantasy", "The lives of guards on Death Row are affected by one of their charges..."},
	{"Gladiator", 2000, "Action, Adventure, Drama", "A former Roman General sets out to exact vengeance against the corrupt emperor..."},
	{"The Lion King", 1994, "Animation, Adventure, Drama", "Lion prince Simba and his father are targeted by his bitter uncle..."},
	{"Back to the Future", 1985, "Adventure, Comedy, Sci-Fi", "Marty McFly, a 17-year-old high school student, is accidentally sent..."},
	{"The Avengers", 2012, "Action, Adventure, Sci-Fi", "Earth's mightiest heroes must come together and learn to fight as a team..."},
	{"Jurassic Park", 1993, "Action, Adventure, Sci-Fi", "A pragmatic paleontologist touring an almost complete theme park..."},
	{"Titanic", 1997, "Drama, Romance", "A seventeen-year-old aristocrat falls in love with a kind but poor artist..."},
	{"The Departed", 2006, "Crime, Drama, Thriller", "An undercover cop and a mole in the police attempt to identify each other..."},
	{"Whiplash", 2014, "Drama, Music", "A promising young drummer enrolls at a cut-throat music conservatory..."},
	{"La La Land", 2016, "Comedy, Drama, Music", "While navigating their careers in Los Angeles, a pianist and an actress..."},
	{"The Social Network", 2010, "Biography, Drama", "As Harvard student Mark Zuckerberg creates the social networking site..."},
	{"Mad Max: Fury Road", 2015, "Action, Adventure, Sci-Fi", "In a post-apocalyptic wasteland, a woman rebels against a tyrannical ruler..."},
	{"Get Out", 2017, "Horror, Mystery, Thriller", "A young African-American visits his white girlfriend's parents for the weekend..."},
	{"Spider-Man: Into the Spider-Verse", 2018, "Animation, Action, Adventure", "Teen Miles Morales becomes the Spider-Man of his universe..."},
	{"Coco", 2017, "Animation, Adventure, Family", "Aspiring musician Miguel, confronted with his family's ancestral ban on music..."},
	{"Up", 2009, "Animation, Adventure, Comedy", "78-year-old Carl Fredricksen travels to Paradise Falls in his house..."},
	{"WALL·E", 2008, "Animation, Adventure, Family", "In a distant, but not so unrealistic, future where mankind has abandoned earth..."},
	{"Inside Out", 2015, "Animation, Adventure, Comedy", "After young Riley is uprooted from her Midwest life and moved to San Francisco..."},
	{"Finding Nemo", 2003, "Animation, Adventure, Comedy", "After his son is captured in the Great Barrier Reef and taken to Sydney..."},
	{"Toy Story", 1995, "Animation, Adventure, Comedy", "A cowboy doll is profoundly threatened and jealous when a new spaceman figure..."},
	{"Monsters, Inc.", 2001, "Animation, Adventure, Comedy", "In order to power the city, monsters have to scare children so that they scream..."},
	{"Ratatouille", 2007, "Animation, Adventure, Comedy", "A rat who can cook makes an unusual alliance with a young kitchen worker..."},
	{"The Incredibles", 2004, "Animation, Action, Adventure", "A family of undercover superheroes, while trying to live the quiet suburban life..."},
	{"Shrek", 2001, "Animation, Adventure, Comedy", "A mean lord exiles fairytale creatures to the swamp of a grumpy ogre..."},
	{"Zootopia", 2016, "Animation, Adventure, Comedy", "In a city of anthropomorphic animals, a rookie bunny cop and a cynical con artist..."},
	{"Moana", 2016, "Animation, Adventure, Comedy", "In Ancient Polynesia, when a terrible curse incurred by the Demigod Maui reaches..."},
	{"Frozen", 2013, "Animation, Adventure, Comedy", "When the newly crowned Queen Elsa accidentally uses her power to turn things into ice..."},
	{"Tangled", 2010, "Animation, Adventure, Comedy", "The magically long-haired Rapunzel has spent her entire life in a tower..."},
	{"The Grand Budapest Hotel", 2014, "Adventure, Comedy, Crime", "A writer encounters the owner of an aging high-class hotel, who tells him of his early years..."},
	{"Moonlight", 2016, "Drama", "A young African-American man grapples with his identity and sexuality..."},
	{"Spotlight", 2015, "Biography, Crime, Drama", "The true story of how the Boston Globe uncovered the massive scandal..."},
	{"Birdman", 2014, "Comedy, Drama", "A washed-up superhero actor attempts to revive his fading career by writing..."},
	{"12 Years a Slave", 2013, "Biography, Drama, History", "In the antebellum United States, Solomon Northup, a free black man from upstate New York..."},
	{"Django Unchained", 2012, "Drama, Western", "With the help of a German bounty hunter, a freed slave sets out to rescue his wife..."},
	{"Inglourious Basterds", 2009, "Adventure, Drama, War", "In Nazi-occupied France during World War II, a plan to assassinate Nazi leaders..."},
	{"The Prestige", 2006, "Drama, Mystery, Sci-Fi", "After a tragic accident, two stage magicians engage in a battle to create..."},
	{"Memento", 2000, "Mystery, Thriller", "A man with short-term memory loss attempts to track down his wife's murderer..."},
	{"Eternal Sunshine of the Spotless Mind", 2004, "Drama, Romance, Sci-Fi", "When their relationship turns sour, a couple undergoes a medical procedure to have each other erased from their memories..."},
}
