package library

import "magicwriting/internal/models"

// Static content tables. Entries are declared once at start-up and never modified.

var vocabulary = []models.VocabularyEntry{
	// animals
	models.NewVocabularyEntry("rabbit", "兔子", 1, "animals", "The rabbit hops in the garden."),
	models.NewVocabularyEntry("cat", "猫", 1, "animals", "My cat likes to sleep."),
	models.NewVocabularyEntry("dog", "狗", 1, "animals", "The dog runs fast."),
	models.NewVocabularyEntry("bird", "鸟", 1, "animals", "A bird is singing in the tree."),
	models.NewVocabularyEntry("fish", "鱼", 1, "animals", "The fish swims in the water."),
	models.NewVocabularyEntry("panda", "熊猫", 2, "animals", "The panda eats bamboo."),
	models.NewVocabularyEntry("elephant", "大象", 3, "animals", "An elephant has a long nose."),

	// school
	models.NewVocabularyEntry("teacher", "老师", 1, "school", "My teacher is very kind."),
	models.NewVocabularyEntry("student", "学生", 1, "school", "I am a student."),
	models.NewVocabularyEntry("book", "书", 1, "school", "I read a book every day."),
	models.NewVocabularyEntry("pen", "钢笔", 1, "school", "This is my new pen."),
	models.NewVocabularyEntry("classroom", "教室", 2, "school", "Our classroom is big and bright."),
	models.NewVocabularyEntry("homework", "作业", 3, "school", "I finish my homework after dinner."),
	models.NewVocabularyEntry("library", "图书馆", 4, "school", "We borrow books from the library."),
	models.NewVocabularyEntry("playground", "操场", 3, "school", "We play games on the playground."),

	// family
	models.NewVocabularyEntry("father", "爸爸", 1, "family", "My father is tall."),
	models.NewVocabularyEntry("mother", "妈妈", 1, "family", "My mother cooks dinner."),
	models.NewVocabularyEntry("family", "家庭", 1, "family", "I love my family."),
	models.NewVocabularyEntry("home", "家", 1, "family", "My home is near the park."),
	models.NewVocabularyEntry("love", "爱", 2, "family", "We love each other."),
	models.NewVocabularyEntry("grandmother", "奶奶", 3, "family", "My grandmother tells me stories."),

	// food
	models.NewVocabularyEntry("apple", "苹果", 1, "food", "I eat an apple every morning."),
	models.NewVocabularyEntry("banana", "香蕉", 1, "food", "Monkeys like bananas."),
	models.NewVocabularyEntry("rice", "米饭", 1, "food", "We have rice for lunch."),
	models.NewVocabularyEntry("milk", "牛奶", 1, "food", "I drink milk before bed."),
	models.NewVocabularyEntry("water", "水", 1, "food", "Please give me some water."),
	models.NewVocabularyEntry("breakfast", "早餐", 3, "food", "Breakfast is important."),
	models.NewVocabularyEntry("delicious", "美味的", 5, "food", "The noodles are delicious."),

	// sports
	models.NewVocabularyEntry("football", "足球", 2, "sports", "We play football after school."),
	models.NewVocabularyEntry("basketball", "篮球", 2, "sports", "My brother is good at basketball."),
	models.NewVocabularyEntry("swim", "游泳", 2, "sports", "I can swim in the pool."),
	models.NewVocabularyEntry("team", "队伍", 4, "sports", "Our team won the game."),
	models.NewVocabularyEntry("exercise", "锻炼", 5, "sports", "Exercise keeps us healthy."),

	// daily
	models.NewVocabularyEntry("morning", "早上", 1, "daily", "I get up early in the morning."),
	models.NewVocabularyEntry("friend", "朋友", 1, "daily", "She is my best friend."),
	models.NewVocabularyEntry("happy", "快乐的", 1, "daily", "I am happy today."),
	models.NewVocabularyEntry("weekend", "周末", 3, "daily", "I visit my grandparents on the weekend."),

	// colors
	models.NewVocabularyEntry("red", "红色", 1, "colors", "The apple is red."),
	models.NewVocabularyEntry("blue", "蓝色", 1, "colors", "The sky is blue."),
	models.NewVocabularyEntry("green", "绿色", 1, "colors", "The grass is green."),
	models.NewVocabularyEntry("rainbow", "彩虹", 3, "colors", "I saw a rainbow after the rain."),
}

var phrases = []models.PhraseEntry{
	// school
	models.NewPhraseEntry("Good morning, teacher!", "老师，早上好！", "school", "Good morning, teacher! How are you today?"),
	models.NewPhraseEntry("May I go to the toilet?", "我可以去洗手间吗？", "school", "Excuse me, may I go to the toilet?"),
	models.NewPhraseEntry("I have a question.", "我有一个问题。", "school", "I have a question about the homework."),
	models.NewPhraseEntry("Can you help me?", "你能帮助我吗？", "school", "This word is hard. Can you help me?"),
	models.NewPhraseEntry("I finished my homework.", "我完成了作业。", "school", "I finished my homework, so I can play now."),

	// family
	models.NewPhraseEntry("I love my family.", "我爱我的家人。", "family", "I love my family because they take care of me."),
	models.NewPhraseEntry("My mother cooks dinner.", "我妈妈做晚饭。", "family", "Every evening my mother cooks dinner for us."),
	models.NewPhraseEntry("We watch TV together.", "我们一起看电视。", "family", "On Sunday we watch TV together."),
	models.NewPhraseEntry("Family is important.", "家庭很重要。", "family", "Family is important to everyone."),
	models.NewPhraseEntry("I help my parents.", "我帮助我的父母。", "family", "I help my parents wash the dishes."),

	// animals
	models.NewPhraseEntry("I have a pet dog.", "我有一只宠物狗。", "animals", "I have a pet dog named Lucky."),
	models.NewPhraseEntry("Cats are cute.", "猫很可爱。", "animals", "Cats are cute and soft."),
	models.NewPhraseEntry("Birds can fly.", "鸟会飞。", "animals", "Birds can fly high in the sky."),
	models.NewPhraseEntry("I like animals.", "我喜欢动物。", "animals", "I like animals, especially pandas."),
	models.NewPhraseEntry("The rabbit hops fast.", "兔子跳得很快。", "animals", "Look! The rabbit hops fast."),

	// daily
	models.NewPhraseEntry("How are you?", "你好吗？", "daily", "Hi, Tom! How are you?"),
	models.NewPhraseEntry("Thank you very much.", "非常感谢。", "daily", "Thank you very much for the gift."),
	models.NewPhraseEntry("Nice to meet you.", "很高兴见到你。", "daily", "My name is Amy. Nice to meet you."),
	models.NewPhraseEntry("See you tomorrow.", "明天见。", "daily", "Goodbye, see you tomorrow!"),
	models.NewPhraseEntry("Have a nice day.", "祝你今天愉快。", "daily", "Have a nice day at school!"),

	// food
	models.NewPhraseEntry("I am hungry.", "我饿了。", "food", "I am hungry. Let's have lunch."),
	models.NewPhraseEntry("It tastes good.", "它尝起来很好。", "food", "This cake tastes good."),
	models.NewPhraseEntry("Would you like some milk?", "你想要一些牛奶吗？", "food", "Would you like some milk with your bread?"),

	// sports
	models.NewPhraseEntry("Let's play together.", "我们一起玩吧。", "sports", "Let's play football together after class."),
	models.NewPhraseEntry("Well done!", "干得好！", "sports", "You scored a goal. Well done!"),
}

var sentencePatterns = []models.SentencePatternEntry{
	models.NewSentencePatternEntry("I like...", "我喜欢...", "I like apples.", models.LevelBasic, "general"),
	models.NewSentencePatternEntry("I have...", "我有...", "I have a book.", models.LevelBasic, "general"),
	models.NewSentencePatternEntry("I can...", "我能...", "I can swim.", models.LevelBasic, "general"),
	models.NewSentencePatternEntry("My... is...", "我的...是...", "My dog is small.", models.LevelBasic, "general"),
	models.NewSentencePatternEntry("This is my...", "这是我的...", "This is my father.", models.LevelBasic, "family"),
	models.NewSentencePatternEntry("I go to...", "我去...", "I go to school.", models.LevelBasic, "school"),
	models.NewSentencePatternEntry("I eat...", "我吃...", "I eat breakfast.", models.LevelBasic, "food"),
	models.NewSentencePatternEntry("I play with...", "我和...一起玩", "I play with my friends.", models.LevelBasic, "general"),
	models.NewSentencePatternEntry("There is...", "有...", "There is a cat.", models.LevelBasic, "general"),
	models.NewSentencePatternEntry("I want to...", "我想要...", "I want to learn English.", models.LevelBasic, "general"),
	models.NewSentencePatternEntry("My favourite... is... because...", "我最喜欢的...是...因为...", "My favourite animal is the panda because it is cute.", models.LevelIntermediate, "animals"),
	models.NewSentencePatternEntry("In the morning, I... and then I...", "早上我...然后我...", "In the morning, I brush my teeth and then I eat breakfast.", models.LevelIntermediate, "daily"),
	models.NewSentencePatternEntry("At school, we usually...", "在学校我们通常...", "At school, we usually read stories together.", models.LevelIntermediate, "school"),
	models.NewSentencePatternEntry("My family often... on weekends.", "我的家人周末经常...", "My family often goes hiking on weekends.", models.LevelIntermediate, "family"),
	models.NewSentencePatternEntry("I am good at... because I practise...", "我擅长...因为我练习...", "I am good at basketball because I practise every day.", models.LevelAdvanced, "sports"),
	models.NewSentencePatternEntry("Not only... but also...", "不仅...而且...", "Not only is the food delicious, but it is also healthy.", models.LevelAdvanced, "food"),
}
