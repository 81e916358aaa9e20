package catalog

// DefaultProducts is the built-in commission table used when no external
// catalog has been loaded. Commission percentages track the public
// Wildberries category rates.
var DefaultProducts = []Product{
	// Одежда и обувь
	{Name: "Футболка мужская", Commission: 15.5, Warehouse: WarehouseFBO, Category: "Одежда и обувь"},
	{Name: "Джинсы женские", Commission: 16.0, Warehouse: WarehouseFBO, Category: "Одежда и обувь"},
	{Name: "Кроссовки спортивные", Commission: 18.0, Warehouse: WarehouseFBO, Category: "Одежда и обувь"},
	{Name: "Куртка зимняя", Commission: 17.5, Warehouse: WarehouseFBO, Category: "Одежда и обувь"},
	{Name: "Платье летнее", Commission: 16.5, Warehouse: WarehouseFBO, Category: "Одежда и обувь"},
	{Name: "Шорты мужские", Commission: 15.0, Warehouse: WarehouseFBO, Category: "Одежда и обувь"},

	// Электроника
	{Name: "Смартфон", Commission: 5.0, Warehouse: WarehouseFBO, Category: "Электроника"},
	{Name: "Наушники беспроводные", Commission: 10.0, Warehouse: WarehouseFBO, Category: "Электроника"},
	{Name: "Зарядное устройство", Commission: 15.0, Warehouse: WarehouseFBO, Category: "Электроника"},
	{Name: "Планшет", Commission: 5.5, Warehouse: WarehouseFBO, Category: "Электроника"},
	{Name: "Смарт-часы", Commission: 8.0, Warehouse: WarehouseFBO, Category: "Электроника"},

	// Красота и здоровье
	{Name: "Крем для лица", Commission: 18.0, Warehouse: WarehouseFBO, Category: "Красота и здоровье"},
	{Name: "Шампунь", Commission: 20.0, Warehouse: WarehouseFBO, Category: "Красота и здоровье"},
	{Name: "Духи", Commission: 17.0, Warehouse: WarehouseFBO, Category: "Красота и здоровье"},
	{Name: "Масло для тела", Commission: 19.0, Warehouse: WarehouseFBO, Category: "Красота и здоровье"},

	// Дом и сад
	{Name: "Постельное белье", Commission: 18.5, Warehouse: WarehouseFBO, Category: "Дом и сад"},
	{Name: "Полотенце банное", Commission: 19.0, Warehouse: WarehouseFBO, Category: "Дом и сад"},
	{Name: "Штора для окна", Commission: 17.0, Warehouse: WarehouseFBO, Category: "Дом и сад"},
	{Name: "Подушка декоративная", Commission: 18.0, Warehouse: WarehouseFBO, Category: "Дом и сад"},

	// Спорт и отдых
	{Name: "Мяч футбольный", Commission: 15.0, Warehouse: WarehouseFBO, Category: "Спорт и отдых"},
	{Name: "Гантели", Commission: 16.5, Warehouse: WarehouseFBO, Category: "Спорт и отдых"},
	{Name: "Рюкзак спортивный", Commission: 17.5, Warehouse: WarehouseFBO, Category: "Спорт и отдых"},
	{Name: "Фитнес-браслет", Commission: 9.0, Warehouse: WarehouseFBO, Category: "Спорт и отдых"},
	{Name: "Йога-коврик", Commission: 18.0, Warehouse: WarehouseFBO, Category: "Спорт и отдых"},
	{Name: "Велосипед спортивный", Commission: 10.0, Warehouse: WarehouseFBO, Category: "Спорт и отдых"},

	// Детские товары
	{Name: "Игрушка мягкая", Commission: 20.0, Warehouse: WarehouseFBO, Category: "Детские товары"},
	{Name: "Конструктор детский", Commission: 18.5, Warehouse: WarehouseFBO, Category: "Детские товары"},
	{Name: "Коляска детская", Commission: 12.0, Warehouse: WarehouseFBO, Category: "Детские товары"},
	{Name: "Детская одежда", Commission: 19.0, Warehouse: WarehouseFBO, Category: "Детские товары"},

	// Автотовары
	{Name: "Автомобильные коврики", Commission: 17.0, Warehouse: WarehouseFBO, Category: "Автотовары"},
	{Name: "Чехлы на сиденья", Commission: 18.0, Warehouse: WarehouseFBO, Category: "Автотовары"},

	// Книги
	{Name: "Книга художественная", Commission: 15.0, Warehouse: WarehouseFBO, Category: "Книги"},
	{Name: "Детская книга", Commission: 16.0, Warehouse: WarehouseFBO, Category: "Книги"},

	// Продукты питания
	{Name: "Чай черный", Commission: 18.0, Warehouse: WarehouseFBO, Category: "Продукты питания"},
	{Name: "Кофе молотый", Commission: 17.5, Warehouse: WarehouseFBO, Category: "Продукты питания"},
	{Name: "Сладости", Commission: 19.0, Warehouse: WarehouseFBO, Category: "Продукты питания"},

	// Бытовая техника
	{Name: "Утюг электрический", Commission: 12.0, Warehouse: WarehouseFBO, Category: "Бытовая техника"},
	{Name: "Пылесос", Commission: 11.0, Warehouse: WarehouseFBO, Category: "Бытовая техника"},
	{Name: "Микроволновка", Commission: 8.5, Warehouse: WarehouseFBO, Category: "Бытовая техника"},
	{Name: "Кофемашина", Commission: 7.0, Warehouse: WarehouseFBO, Category: "Бытовая техника"},
	{Name: "Блендер", Commission: 13.5, Warehouse: WarehouseFBO, Category: "Бытовая техника"},
	{Name: "Чайник электрический", Commission: 14.0, Warehouse: WarehouseFBO, Category: "Бытовая техника"},

	// Аксессуары
	{Name: "Сумка женская", Commission: 17.0, Warehouse: WarehouseFBO, Category: "Аксессуары"},
	{Name: "Ремень кожаный", Commission: 18.5, Warehouse: WarehouseFBO, Category: "Аксессуары"},
	{Name: "Очки солнцезащитные", Commission: 16.0, Warehouse: WarehouseFBO, Category: "Аксессуары"},
	{Name: "Часы наручные", Commission: 12.5, Warehouse: WarehouseFBO, Category: "Аксессуары"},

	// Товары для дома
	{Name: "Светильник настольный", Commission: 15.0, Warehouse: WarehouseFBO, Category: "Товары для дома"},
	{Name: "Ваза декоративная", Commission: 19.5, Warehouse: WarehouseFBO, Category: "Товары для дома"},
	{Name: "Ковер напольный", Commission: 16.5, Warehouse: WarehouseFBO, Category: "Товары для дома"},
	{Name: "Зеркало настенное", Commission: 17.0, Warehouse: WarehouseFBO, Category: "Товары для дома"},

	// Косметика и парфюмерия
	{Name: "Помада губная", Commission: 20.0, Warehouse: WarehouseFBO, Category: "Косметика и парфюмерия"},
	{Name: "Тушь для ресниц", Commission: 19.5, Warehouse: WarehouseFBO, Category: "Косметика и парфюмерия"},
	{Name: "Тональный крем", Commission: 18.5, Warehouse: WarehouseFBO, Category: "Косметика и парфюмерия"},
	{Name: "Лак для ногтей", Commission: 19.0, Warehouse: WarehouseFBO, Category: "Косметика и парфюмерия"},

	// Компьютеры и аксессуары
	{Name: "Клавиатура игровая", Commission: 12.0, Warehouse: WarehouseFBO, Category: "Компьютеры и аксессуары"},
	{Name: "Мышь компьютерная", Commission: 13.0, Warehouse: WarehouseFBO, Category: "Компьютеры и аксессуары"},
	{Name: "Коврик для мыши", Commission: 20.0, Warehouse: WarehouseFBO, Category: "Компьютеры и аксессуары"},
	{Name: "Веб-камера", Commission: 11.5, Warehouse: WarehouseFBO, Category: "Компьютеры и аксессуары"},

	// Товары для животных
	{Name: "Корм для собак", Commission: 19.0, Warehouse: WarehouseFBO, Category: "Товары для животных"},
	{Name: "Корм для кошек", Commission: 19.0, Warehouse: WarehouseFBO, Category: "Товары для животных"},
	{Name: "Ошейник для собаки", Commission: 18.5, Warehouse: WarehouseFBO, Category: "Товары для животных"},
	{Name: "Игрушка для кота", Commission: 20.0, Warehouse: WarehouseFBO, Category: "Товары для животных"},

	// Сад и огород
	{Name: "Семена овощные", Commission: 18.0, Warehouse: WarehouseFBO, Category: "Сад и огород"},
	{Name: "Удобрение для растений", Commission: 17.5, Warehouse: WarehouseFBO, Category: "Сад и огород"},
	{Name: "Горшок цветочный", Commission: 19.5, Warehouse: WarehouseFBO, Category: "Сад и огород"},

	// Инструменты
	{Name: "Дрель электрическая", Commission: 10.5, Warehouse: WarehouseFBO, Category: "Инструменты"},
	{Name: "Молоток", Commission: 16.0, Warehouse: WarehouseFBO, Category: "Инструменты"},
	{Name: "Отвертка набор", Commission: 17.0, Warehouse: WarehouseFBO, Category: "Инструменты"},

	// Канцтовары
	{Name: "Ручка шариковая", Commission: 20.0, Warehouse: WarehouseFBO, Category: "Канцтовары"},
	{Name: "Блокнот", Commission: 18.5, Warehouse: WarehouseFBO, Category: "Канцтовары"},
	{Name: "Папка-файл", Commission: 19.0, Warehouse: WarehouseFBO, Category: "Канцтовары"},

	// Товары для ванной
	{Name: "Полотенце махровое", Commission: 19.0, Warehouse: WarehouseFBO, Category: "Товары для ванной"},
	{Name: "Коврик для ванной", Commission: 18.5, Warehouse: WarehouseFBO, Category: "Товары для ванной"},
	{Name: "Зеркало для ванной", Commission: 17.0, Warehouse: WarehouseFBO, Category: "Товары для ванной"},
}
