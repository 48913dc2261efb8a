package stock

import "strconv"

type Category int32

const (
	CategoryNone Category = 0

	CategoryBook Category = 1
	CategoryGame Category = 2
	CategoryToy  Category = 3

	CategoryElectronics       Category = 4
	CategoryMobile            Category = 5
	CategoryLaptop            Category = 6
	CategoryComputerAccessory Category = 7
	CategoryAudio             Category = 8
	CategoryCamera            Category = 9
	CategorySmartWatch        Category = 10

	CategoryClothing     Category = 11
	CategoryFootwear     Category = 12
	CategoryJewelry      Category = 13
	CategoryBeauty       Category = 14
	CategoryPersonalCare Category = 15
	CategoryWatch        Category = 16
	CategoryBag          Category = 17

	CategoryFurniture        Category = 18
	CategoryKitchenAppliance Category = 19
	CategoryHomeDecor        Category = 20
	CategoryLighting         Category = 21
	CategoryCleaningSupply   Category = 22
	CategoryBedding          Category = 23

	CategoryGrocery      Category = 24
	CategoryBeverage     Category = 25
	CategorySnack        Category = 26
	CategoryFreshProduce Category = 27
	CategoryFrozenFood   Category = 28

	CategoryStationery   Category = 29
	CategoryOfficeSupply Category = 30
	CategoryArtSupply    Category = 31

	CategorySports         Category = 32
	CategoryFitness        Category = 33
	CategoryOutdoorGear    Category = 34
	CategoryCycleAccessory Category = 35

	CategoryMusic        Category = 36
	CategoryMovie        Category = 37
	CategorySoftware     Category = 38
	CategoryEbook        Category = 39
	CategorySubscription Category = 40

	CategoryAutomotive   Category = 41
	CategoryTool         Category = 42
	CategoryHardware     Category = 43
	CategoryCarAccessory Category = 44

	CategoryBabyProduct  Category = 45
	CategoryKidsWear     Category = 46
	CategorySchoolSupply Category = 47

	CategoryMedicine      Category = 48
	CategorySupplement    Category = 49
	CategoryMedicalDevice Category = 50

	CategoryPetSupply Category = 51
	CategoryGift      Category = 52
	CategoryAccessory Category = 53
	CategoryOther     Category = 99
)

var categoryToStrMap = map[Category]string{
	CategoryNone:              "None",
	CategoryBook:              "Book",
	CategoryGame:              "Game",
	CategoryToy:               "Toy",
	CategoryElectronics:       "Electronics",
	CategoryMobile:            "Mobile",
	CategoryLaptop:            "Laptop",
	CategoryComputerAccessory: "ComputerAccessory",
	CategoryAudio:             "Audio",
	CategoryCamera:            "Camera",
	CategorySmartWatch:        "SmartWatch",
	CategoryClothing:          "Clothing",
	CategoryFootwear:          "Footwear",
	CategoryJewelry:           "Jewelry",
	CategoryBeauty:            "Beauty",
	CategoryPersonalCare:      "PersonalCare",
	CategoryWatch:             "Watch",
	CategoryBag:               "Bag",
	CategoryFurniture:         "Furniture",
	CategoryKitchenAppliance:  "KitchenAppliance",
	CategoryHomeDecor:         "HomeDecor",
	CategoryLighting:          "Lighting",
	CategoryCleaningSupply:    "CleaningSupply",
	CategoryBedding:           "Bedding",
	CategoryGrocery:           "Grocery",
	CategoryBeverage:          "Beverage",
	CategorySnack:             "Snack",
	CategoryFreshProduce:      "FreshProduce",
	CategoryFrozenFood:        "FrozenFood",
	CategoryStationery:        "Stationery",
	CategoryOfficeSupply:      "OfficeSupply",
	CategoryArtSupply:         "ArtSupply",
	CategorySports:            "Sports",
	CategoryFitness:           "Fitness",
	CategoryOutdoorGear:       "OutdoorGear",
	CategoryCycleAccessory:    "CycleAccessory",
	CategoryMusic:             "Music",
	CategoryMovie:             "Movie",
	CategorySoftware:          "Software",
	CategoryEbook:             "Ebook",
	CategorySubscription:      "Subscription",
	CategoryAutomotive:        "Automotive",
	CategoryTool:              "Tool",
	CategoryHardware:          "Hardware",
	CategoryCarAccessory:      "CarAccessory",
	CategoryBabyProduct:       "BabyProduct",
	CategoryKidsWear:          "KidsWear",
	CategorySchoolSupply:      "SchoolSupply",
	CategoryMedicine:          "Medicine",
	CategorySupplement:        "Supplement",
	CategoryMedicalDevice:     "MedicalDevice",
	CategoryPetSupply:         "PetSupply",
	CategoryGift:              "Gift",
	CategoryAccessory:         "Accessory",
	CategoryOther:             "Other",
}

func (c Category) String() string {
	if s, ok := categoryToStrMap[c]; ok {
		return s
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

func (c Category) IsValid() bool {
	_, ok := categoryToStrMap[c]
	return ok
}
