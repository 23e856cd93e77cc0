package feed

import "github.com/kilianp07/kitchen/core/model"

// Problem returns the default feed of 48 mixed orders.
func Problem() Static {
	return Static{Orders: []model.Order{
		{ID: "kc3yd", Name: "Chicken Nuggets", Temp: model.TempHot, Freshness: 109},
		{ID: "k6ie1", Name: "Pressed Juice", Temp: model.TempCold, Freshness: 166},
		{ID: "oozhn", Name: "Tuna Sandwich", Temp: model.TempCold, Freshness: 76},
		{ID: "ye5h4", Name: "Stale Bread", Temp: model.TempRoom, Freshness: 84},
		{ID: "97kyd", Name: "Coconut", Temp: model.TempRoom, Freshness: 68},
		{ID: "6xt88", Name: "French Fries", Temp: model.TempHot, Freshness: 70},
		{ID: "pqi6y", Name: "Tuna Sandwich", Temp: model.TempCold, Freshness: 142},
		{ID: "k33xb", Name: "Apple", Temp: model.TempRoom, Freshness: 154},
		{ID: "cnhek", Name: "Mixed Greens", Temp: model.TempCold, Freshness: 155},
		{ID: "b8dmo", Name: "Pressed Juice", Temp: model.TempCold, Freshness: 114},
		{ID: "8foed", Name: "Vanilla Ice Cream", Temp: model.TempCold, Freshness: 92},
		{ID: "jqwjk", Name: "Banana", Temp: model.TempRoom, Freshness: 117},
		{ID: "qd6ci", Name: "Chocolate Gelato", Temp: model.TempCold, Freshness: 152},
		{ID: "p7jc7", Name: "Sushi", Temp: model.TempCold, Freshness: 132},
		{ID: "99xpj", Name: "Tuna Sandwich", Temp: model.TempCold, Freshness: 171},
		{ID: "ytwba", Name: "Chocolate Gelato", Temp: model.TempCold, Freshness: 132},
		{ID: "3f13a", Name: "Danish Pastry", Temp: model.TempRoom, Freshness: 172},
		{ID: "q6jf6", Name: "Banana", Temp: model.TempRoom, Freshness: 133},
		{ID: "cskmf", Name: "Sushi", Temp: model.TempCold, Freshness: 109},
		{ID: "r7o5a", Name: "Italian Meatballs", Temp: model.TempHot, Freshness: 95},
		{ID: "jw6m4", Name: "Tomato Soup", Temp: model.TempHot, Freshness: 89},
		{ID: "c4h6o", Name: "Lasagna", Temp: model.TempHot, Freshness: 77},
		{ID: "g6ze6", Name: "Cheeseburger", Temp: model.TempHot, Freshness: 155},
		{ID: "1sdcq", Name: "Tuna Sandwich", Temp: model.TempCold, Freshness: 65},
		{ID: "53qyj", Name: "Vanilla Ice Cream", Temp: model.TempCold, Freshness: 157},
		{ID: "w8cq3", Name: "Pad Thai", Temp: model.TempHot, Freshness: 76},
		{ID: "fdsim", Name: "Chicken Tacos", Temp: model.TempHot, Freshness: 150},
		{ID: "z97b6", Name: "Kale Salad", Temp: model.TempCold, Freshness: 133},
		{ID: "rh7ip", Name: "Pad See Ew", Temp: model.TempHot, Freshness: 104},
		{ID: "utu8w", Name: "Apple", Temp: model.TempRoom, Freshness: 63},
		{ID: "84qq5", Name: "Vanilla Ice Cream", Temp: model.TempCold, Freshness: 161},
		{ID: "1yiey", Name: "Mac & Cheese", Temp: model.TempHot, Freshness: 84},
		{ID: "osxjk", Name: "Bacon Burger", Temp: model.TempHot, Freshness: 106},
		{ID: "kc88d", Name: "Stale Bread", Temp: model.TempRoom, Freshness: 160},
		{ID: "mad8w", Name: "Cheeseburger", Temp: model.TempHot, Freshness: 178},
		{ID: "5swzx", Name: "Mac & Cheese", Temp: model.TempHot, Freshness: 162},
		{ID: "e33hj", Name: "Burrito", Temp: model.TempHot, Freshness: 106},
		{ID: "cj1do", Name: "BBQ Pizza", Temp: model.TempHot, Freshness: 95},
		{ID: "x9h4b", Name: "Gas Station Sushi", Temp: model.TempRoom, Freshness: 127},
		{ID: "wscrq", Name: "Turkey Sandwich", Temp: model.TempCold, Freshness: 92},
		{ID: "o7dtq", Name: "Chicken Nuggets", Temp: model.TempHot, Freshness: 107},
		{ID: "k6jqj", Name: "Fizzed-Out Pepsi", Temp: model.TempRoom, Freshness: 109},
		{ID: "3xido", Name: "Pad Thai", Temp: model.TempHot, Freshness: 114},
		{ID: "tjnrp", Name: "Vegetarian Pizza", Temp: model.TempHot, Freshness: 139},
		{ID: "4rrjc", Name: "Lasagna", Temp: model.TempHot, Freshness: 141},
		{ID: "qi5wo", Name: "Cheese Pizza", Temp: model.TempHot, Freshness: 176},
		{ID: "zdpz6", Name: "Danish Pastry", Temp: model.TempRoom, Freshness: 121},
		{ID: "bu5d4", Name: "Tuna Sandwich", Temp: model.TempCold, Freshness: 64},
	}}
}
