package catalog

import "github.com/example/thaivocab/pkg/models"

var defaultItems = []models.VocabularyItem{
	{ID: "sawatdee", Text: "สวัสดี", Translation: "hello", Difficulty: models.Beginner},
	{ID: "khob-khun", Text: "ขอบคุณ", Translation: "thank you", Difficulty: models.Beginner},
	{ID: "chai", Text: "ใช่", Translation: "yes", Difficulty: models.Beginner},
	{ID: "mai-chai", Text: "ไม่ใช่", Translation: "no", Difficulty: models.Beginner},
	{ID: "nam", Text: "น้ำ", Translation: "water", Difficulty: models.Beginner},
	{ID: "khao", Text: "ข้าว", Translation: "rice", Difficulty: models.Beginner},
	{ID: "aroi", Text: "อร่อย", Translation: "delicious", Difficulty: models.Beginner},
	{ID: "tao-rai", Text: "เท่าไร", Translation: "how much", Difficulty: models.Intermediate},
	{ID: "hong-nam", Text: "ห้องน้ำ", Translation: "bathroom", Difficulty: models.Intermediate},
	{ID: "pai-nai", Text: "ไปไหน", Translation: "where are you going", Difficulty: models.Intermediate},
	{ID: "mai-pen-rai", Text: "ไม่เป็นไร", Translation: "never mind", Difficulty: models.Intermediate},
	{ID: "kin-khao-reu-yang", Text: "กินข้าวหรือยัง", Translation: "have you eaten yet", Difficulty: models.Intermediate},
	{ID: "khwam-rak", Text: "ความรัก", Translation: "love", Difficulty: models.Advanced},
	{ID: "prathet-thai", Text: "ประเทศไทย", Translation: "Thailand", Difficulty: models.Advanced},
	{ID: "wattanatham", Text: "วัฒนธรรม", Translation: "culture", Difficulty: models.Advanced},
	{ID: "sabai-sabai", Text: "สบายสบาย", Translation: "relaxed, easy-going", Difficulty: models.Advanced},
}

// Default returns the built-in Thai starter deck
func Default() *Catalog {
	c, err := New(defaultItems)
	if err != nil {
		panic(err)
	}
	return c
}
