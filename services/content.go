package services

import "FaithNest/models"

// Built-in lesson and devotional catalogs. Read-only reference content; the
// authoring workflow lives outside this service.
var lessonCatalog = []models.Lesson{
	{
		ID:                  1,
		Title:               "The Creation Story",
		Content:             "In the beginning, God created the heavens and the earth.\n\nGod created the world in six days and rested on the seventh. He created light, land, plants, animals, and people.\n\nGod saw all that He had made, and it was very good.",
		AgeRange:            "6-10",
		ScriptureReferences: "Genesis 1",
	},
	{
		ID:                  2,
		Title:               "Noah and the Ark",
		Content:             "God told Noah to build an ark to save his family and animals from the flood.\n\nNoah obeyed even when others laughed at him. God protected them during the storm.\n\nThe rainbow was God's promise to never flood the whole earth again.",
		AgeRange:            "6-12",
		ScriptureReferences: "Genesis 6–9",
	},
	{
		ID:                  3,
		Title:               "Jesus Feeds 5,000",
		Content:             "A crowd followed Jesus, and they were hungry.\n\nA boy had five loaves and two fish. Jesus gave thanks and fed the whole crowd.\n\nEveryone ate and there were baskets of food left over.",
		AgeRange:            "5-11",
		ScriptureReferences: "John 6:1–14",
	},
	{
		ID:                  4,
		Title:               "The Ten Commandments",
		Content:             "God gave Moses the Ten Commandments on Mount Sinai.\n\nThese commandments teach us how to love God and others.\n\nWe show our love for God by obeying His Word.",
		AgeRange:            "8-13",
		ScriptureReferences: "Exodus 20",
	},
}

var devotionalCatalog = []models.Devotional{
	{
		ID:      1,
		Title:   "God is Always With You",
		Verse:   "Isaiah 41:10",
		Content: "Fear not, for I am with you; be not dismayed, for I am your God.\n\nNo matter what you face today, God promises to walk with you. You are never alone.",
		Date:    "2025-04-07",
	},
	{
		ID:      2,
		Title:   "Jesus Calms the Storm",
		Verse:   "Mark 4:39",
		Content: "He got up, rebuked the wind and said to the waves, 'Quiet! Be still!'\n\nEven the storms in our lives must obey Jesus. Trust Him in your worries.",
		Date:    "2025-04-06",
	},
	{
		ID:      3,
		Title:   "God Provides",
		Verse:   "Philippians 4:19",
		Content: "And my God will supply all your needs according to His riches in glory in Christ Jesus.\n\nGod knows what you need today. Trust that He will provide in His perfect timing.",
		Date:    "2025-04-05",
	},
}
