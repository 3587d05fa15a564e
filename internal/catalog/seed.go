package catalog

func init() {
	c = buildCatalog(seedQuestions())
}

func seedQuestions() []Question {
	return []Question{
		{ID: "q1", Text: "困っている人を見ると、つい手を差し伸べたくなる", Category: CategoryStrength},
		{ID: "q2", Text: "一度始めたことは、最後までやり遂げることが多い", Category: CategoryStrength},
		{ID: "q3", Text: "人の話を聞くのが得意だと思う", Category: CategoryStrength},
		{ID: "q4", Text: "新しいアイデアを考えるのが楽しい", Category: CategoryStrength},
		{ID: "q5", Text: "チームで協力して何かを成し遂げるのが好き", Category: CategoryValue},
		{ID: "q6", Text: "自分のペースで物事を進めることを大切にしている", Category: CategoryValue},
		{ID: "q7", Text: "周りの人を笑顔にすることに喜びを感じる", Category: CategoryValue},
		{ID: "q8", Text: "計画を立てて行動することが多い", Category: CategoryPersonality},
		{ID: "q9", Text: "直感を信じて行動することがある", Category: CategoryPersonality},
		{ID: "q10", Text: "細かいところまで気を配ることができる", Category: CategoryPersonality},
		{ID: "q11", Text: "大きな目標に向かって努力することが好き", Category: CategoryStrength},
		{ID: "q12", Text: "人と人との調和を大切にしている", Category: CategoryValue},
		{ID: "q13", Text: "自分の感情を素直に表現できる", Category: CategoryPersonality},
		{ID: "q14", Text: "物事を論理的に考えるのが得意", Category: CategoryStrength},
		{ID: "q15", Text: "誰かの成長を支援することに喜びを感じる", Category: CategoryValue},
	}
}
