package cars

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/m04kA/SMC-CarService/internal/domain"
)

// sortByBrand сортирует автомобили по марке с учетом правил локали (как localeCompare).
// Сортировка стабильная: при равных марках сохраняется порядок хранилища.
// collate.Collator не потокобезопасен, поэтому создается на каждый вызов
func sortByBrand(cars []*domain.Car) {
	collator := collate.New(language.English)
	sort.SliceStable(cars, func(i, j int) bool {
		return collator.CompareString(cars[i].Brand, cars[j].Brand) < 0
	})
}
