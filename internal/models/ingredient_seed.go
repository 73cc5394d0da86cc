package models

// SeedIngredients is the catalog loaded into an empty database.
var SeedIngredients = []Classification{
	{Name: "番茄", Emoji: "🍅", Category: CategoryVegetable},
	{Name: "土豆", Emoji: "🥔", Category: CategoryVegetable},
	{Name: "胡萝卜", Emoji: "🥕", Category: CategoryVegetable},
	{Name: "洋葱", Emoji: "🧅", Category: CategoryVegetable},
	{Name: "大蒜", Emoji: "🧄", Category: CategoryVegetable},
	{Name: "西兰花", Emoji: "🥦", Category: CategoryVegetable},
	{Name: "卷心菜", Emoji: "🥬", Category: CategoryVegetable},
	{Name: "蘑菇", Emoji: "🍄", Category: CategoryVegetable},
	{Name: "茄子", Emoji: "🍆", Category: CategoryVegetable},
	{Name: "黄瓜", Emoji: "🥒", Category: CategoryVegetable},
	{Name: "青椒", Emoji: "🫑", Category: CategoryVegetable},
	{Name: "辣椒", Emoji: "🌶️", Category: CategoryVegetable},
	{Name: "菠菜", Emoji: "🌿", Category: CategoryVegetable},
	{Name: "生菜", Emoji: "🥬", Category: CategoryVegetable},
	{Name: "南瓜", Emoji: "🎃", Category: CategoryVegetable},
	{Name: "玉米", Emoji: "🌽", Category: CategoryVegetable},
	{Name: "红薯", Emoji: "🍠", Category: CategoryVegetable},
	{Name: "生姜", Emoji: "🫚", Category: CategoryVegetable},
	{Name: "莲藕", Emoji: "🪷", Category: CategoryVegetable},
	{Name: "竹笋", Emoji: "🎋", Category: CategoryVegetable},
	{Name: "冬瓜", Emoji: "🍈", Category: CategoryVegetable},

	{Name: "猪肉", Emoji: "🥓", Category: CategoryMeat},
	{Name: "牛肉", Emoji: "🥩", Category: CategoryMeat},
	{Name: "鸡肉", Emoji: "🍗", Category: CategoryMeat},
	{Name: "羊肉", Emoji: "🍖", Category: CategoryMeat},
	{Name: "香肠", Emoji: "🌭", Category: CategoryMeat},
	{Name: "培根", Emoji: "🥓", Category: CategoryMeat},
	{Name: "火腿", Emoji: "🍖", Category: CategoryMeat},
	{Name: "鸭肉", Emoji: "🦆", Category: CategoryMeat},
	{Name: "排骨", Emoji: "🍖", Category: CategoryMeat},

	{Name: "鱼", Emoji: "🐟", Category: CategorySeafood},
	{Name: "虾", Emoji: "🍤", Category: CategorySeafood},
	{Name: "螃蟹", Emoji: "🦀", Category: CategorySeafood},
	{Name: "鱿鱼", Emoji: "🦑", Category: CategorySeafood},
	{Name: "生蚝", Emoji: "🦪", Category: CategorySeafood},
	{Name: "龙虾", Emoji: "🦞", Category: CategorySeafood},
	{Name: "蛤蜊", Emoji: "🐚", Category: CategorySeafood},
	{Name: "扇贝", Emoji: "🦪", Category: CategorySeafood},

	{Name: "鸡蛋", Emoji: "🥚", Category: CategoryDairy},
	{Name: "牛奶", Emoji: "🥛", Category: CategoryDairy},
	{Name: "芝士", Emoji: "🧀", Category: CategoryDairy},
	{Name: "黄油", Emoji: "🧈", Category: CategoryDairy},
	{Name: "豆腐", Emoji: "🧊", Category: CategoryDairy},
	{Name: "酸奶", Emoji: "🍦", Category: CategoryDairy},

	{Name: "米饭", Emoji: "🍚", Category: CategoryStaple},
	{Name: "面条", Emoji: "🍜", Category: CategoryStaple},
	{Name: "面包", Emoji: "🍞", Category: CategoryStaple},
	{Name: "饺子", Emoji: "🥟", Category: CategoryStaple},
	{Name: "意面", Emoji: "🍝", Category: CategoryStaple},
	{Name: "馒头", Emoji: "🥯", Category: CategoryStaple},
	{Name: "年糕", Emoji: "🍘", Category: CategoryStaple},

	{Name: "苹果", Emoji: "🍎", Category: CategoryFruit},
	{Name: "香蕉", Emoji: "🍌", Category: CategoryFruit},
	{Name: "柠檬", Emoji: "🍋", Category: CategoryFruit},
	{Name: "菠萝", Emoji: "🍍", Category: CategoryFruit},
	{Name: "草莓", Emoji: "🍓", Category: CategoryFruit},
	{Name: "西瓜", Emoji: "🍉", Category: CategoryFruit},
	{Name: "橙子", Emoji: "🍊", Category: CategoryFruit},

	{Name: "盐", Emoji: "🧂", Category: CategoryCondiment},
	{Name: "糖", Emoji: "🍬", Category: CategoryCondiment},
	{Name: "油", Emoji: "🫗", Category: CategoryCondiment},
	{Name: "酱油", Emoji: "🍾", Category: CategoryCondiment},
	{Name: "醋", Emoji: "🍶", Category: CategoryCondiment},
	{Name: "蜂蜜", Emoji: "🍯", Category: CategoryCondiment},
	{Name: "料酒", Emoji: "🍶", Category: CategoryCondiment},
	{Name: "胡椒粉", Emoji: "🧂", Category: CategoryCondiment},
}
